package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product groups a set of purchasable variants under one catalog entry.
type Product struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	Variants    []*ProductVariant
	CreatedAt   time.Time
}

// ProductVariant is the sellable unit (a product in a specific color/size).
// From the cart's perspective it is a read-only join: price changes never
// rewrite carts, and orders snapshot the price at finalization time.
type ProductVariant struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	ProductName  string // Denormalized on read for cart and order views.
	Name         string
	Slug         string
	Color        string
	PriceInCents int64  // Non-negative. All money in the store is integer cents.
	ImageURL     string // May be malformed upstream; sanitize before display.
	CreatedAt    time.Time
}
