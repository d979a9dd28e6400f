package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddItemInput defines the data required to add a product variant to the cart.
type AddItemInput struct {
	ProductVariantID uuid.UUID `json:"product_variant_id"`
	Quantity         int       `json:"quantity"`
}

// --- Output DTOs ---

// CartItemOutput is one cart line prepared for display: joined variant data,
// sanitized image URL and pre-formatted money strings.
type CartItemOutput struct {
	ID                uuid.UUID `json:"id"`
	ProductVariantID  uuid.UUID `json:"product_variant_id"`
	ProductName       string    `json:"product_name"`
	VariantName       string    `json:"variant_name"`
	ImageURL          string    `json:"image_url"`
	Quantity          int       `json:"quantity"`
	PriceInCents      int64     `json:"price_in_cents"`
	SubtotalInCents   int64     `json:"subtotal_in_cents"`
	FormattedPrice    string    `json:"formatted_price"`
	FormattedSubtotal string    `json:"formatted_subtotal"`
}

// CartOutput is the cart view returned by every cart operation, so the client
// always renders the post-operation state instead of a stale one.
type CartOutput struct {
	ID               uuid.UUID         `json:"id"`
	Status           string            `json:"status"`
	Items            []*CartItemOutput `json:"items"`
	TotalInCents     int64             `json:"total_in_cents"`
	FormattedTotal   string            `json:"formatted_total"`
	ShippingAddress  *AddressOutput    `json:"shipping_address,omitempty"`
	FormattedAddress string            `json:"formatted_address,omitempty"`
}

// CartUsecase defines the interface for cart-related business operations.
// The cart is created lazily: a user has no cart row until the first add.
type CartUsecase interface {
	// GetCart returns the user's open cart, or an empty view when none exists.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// AddItem puts a variant into the cart. Adding a variant that is already
	// present increments its quantity instead of creating a second line.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddItemInput) (*CartOutput, error)

	// IncreaseItem bumps the quantity of an existing cart line by one.
	IncreaseItem(ctx context.Context, userID, itemID uuid.UUID) (*CartOutput, error)

	// DecreaseItem lowers the quantity of a cart line by one. Decreasing a
	// line at quantity one removes it entirely.
	DecreaseItem(ctx context.Context, userID, itemID uuid.UUID) (*CartOutput, error)

	// RemoveItem deletes a cart line regardless of quantity. Removing a line
	// that is already gone is not an error.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartOutput, error)

	// SetShippingAddress binds one of the user's addresses to the open cart.
	SetShippingAddress(ctx context.Context, userID, addressID uuid.UUID) (*CartOutput, error)
}
