package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// VariantOutput is a sellable variant prepared for display.
type VariantOutput struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Color          string    `json:"color"`
	PriceInCents   int64     `json:"price_in_cents"`
	FormattedPrice string    `json:"formatted_price"`
	ImageURL       string    `json:"image_url"`
}

// ProductOutput groups the variants of one catalog entry.
type ProductOutput struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Variants    []*VariantOutput `json:"variants"`
}

// CatalogUsecase defines the read-only interface for browsing the catalog.
type CatalogUsecase interface {
	// ListProducts returns the whole catalog with variants.
	ListProducts(ctx context.Context) ([]*ProductOutput, error)

	// GetVariantBySlug returns a single variant for the product page.
	GetVariantBySlug(ctx context.Context, slug string) (*VariantOutput, error)
}
