package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the per-user mutable collection of line items pending checkout.
// It is created lazily on the first add-to-cart and kept (marked finalized)
// after a successful checkout.
type Cart struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ShippingAddressID *uuid.UUID       // FK on the cart, not a flag on the address.
	ShippingAddress   *ShippingAddress // Loaded on read when bound.
	Status            CartStatus
	Items             []*CartItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TotalInCents computes the cart total as the sum of quantity x unit price
// over all items. The total is never stored, avoiding drift when items change.
func (c *Cart) TotalInCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceInCents * int64(item.Quantity)
	}

	return total
}

// IsFinalized reports whether the cart has gone through checkout.
func (c *Cart) IsFinalized() bool {
	return c.Status == CartStatusFinalized
}

// CartItem is a (variant, quantity) pair within a cart. Quantity is always
// at least 1: decrementing to zero deletes the row instead of persisting it.
type CartItem struct {
	ID               uuid.UUID
	CartID           uuid.UUID
	ProductVariantID uuid.UUID
	Quantity         int

	// Read-only variant data joined on fetch.
	ProductName  string
	VariantName  string
	PriceInCents int64
	ImageURL     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubtotalInCents is the line subtotal for this item.
func (i *CartItem) SubtotalInCents() int64 {
	return i.PriceInCents * int64(i.Quantity)
}
