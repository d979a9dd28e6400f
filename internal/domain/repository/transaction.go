package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// Checkout finalization depends on this: the empty/address checks, the order
// snapshot and the cart status flip must observe one consistent cart state.
type RepositoryFactory interface {
	// Carts returns a CartRepository bound to the current transaction.
	Carts() CartRepository

	// Addresses returns an AddressRepository bound to the current transaction.
	Addresses() AddressRepository

	// Products returns a ProductRepository bound to the current transaction.
	Products() ProductRepository

	// Orders returns an OrderRepository bound to the current transaction.
	Orders() OrderRepository

	// Users returns a UserRepository bound to the current transaction.
	Users() UserRepository
}
