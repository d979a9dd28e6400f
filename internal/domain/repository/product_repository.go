package repository

import (
	"context"

	"bewear/internal/domain/entity"
	"bewear/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a product variant is not found.
	ErrVariantNotFound = errors.New("product variant not found")
)

// ProductRepository defines the read-only interface for the catalog.
// The cart never mutates catalog rows.
type ProductRepository interface {
	// List retrieves all products with their variants.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindVariantByID retrieves a single variant with its product joined.
	// Returns ErrVariantNotFound if absent.
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error)

	// FindVariantBySlug retrieves a single variant by its URL slug.
	// Returns ErrVariantNotFound if absent.
	FindVariantBySlug(ctx context.Context, slug string) (*entity.ProductVariant, error)
}
