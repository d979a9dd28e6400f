package repository

import (
	"context"

	"bewear/internal/domain/entity"
	"bewear/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when a shipping address is not found.
var ErrAddressNotFound = errors.New("shipping address not found")

// AddressRepository defines the interface for shipping-address database operations.
type AddressRepository interface {
	// Create persists a new shipping address for a user.
	Create(ctx context.Context, address *entity.ShippingAddress) error

	// FindByID retrieves an address by its unique ID.
	// Returns ErrAddressNotFound if absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error)

	// FindByUserID retrieves all addresses for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error)
}
