// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bewear/internal/domain/entity"
	"bewear/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no open cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrCartAlreadyFinalized is returned when a conditional finalize hits a cart
	// that is no longer open.
	ErrCartAlreadyFinalized = errors.New("cart already finalized")
)

// CartRepository defines the interface for cart-related database operations.
// Each mutation is a single atomic statement; multi-step sequences are
// composed by the use case layer inside TransactionManager.Execute.
type CartRepository interface {
	// FindOpenByUserID retrieves the user's open cart with its items, joined
	// variant/product data and the bound shipping address, if any.
	// Returns ErrCartNotFound if the user has no open cart.
	FindOpenByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindByID retrieves a cart (any status) with items and address by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// Create persists a new empty open cart for a user.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindItemByID retrieves a single cart item with joined variant data.
	// Returns ErrCartItemNotFound if absent.
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error)

	// FindItemByVariant retrieves the item for (cart, variant), enforcing the
	// one-row-per-variant invariant. Returns ErrCartItemNotFound if absent.
	FindItemByVariant(ctx context.Context, cartID, variantID uuid.UUID) (*entity.CartItem, error)

	// CreateItem inserts a new cart item row.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItemQuantity sets the quantity of an existing item.
	// Returns ErrCartItemNotFound when the row no longer exists.
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// DeleteItem removes a cart item. Deleting an absent item is not an error;
	// the removed return value reports whether a row was actually deleted.
	DeleteItem(ctx context.Context, itemID uuid.UUID) (removed bool, err error)

	// SetShippingAddress binds an address to the cart.
	SetShippingAddress(ctx context.Context, cartID, addressID uuid.UUID) error

	// Finalize conditionally flips an open cart to finalized.
	// Returns ErrCartAlreadyFinalized when the cart was not open anymore,
	// which guards the checkout race at write time.
	Finalize(ctx context.Context, cartID uuid.UUID) error
}
