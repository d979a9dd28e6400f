package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the post-checkout state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order awaits contact from the sales team.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates the order has been confirmed with the customer.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the immutable snapshot of a cart captured at finalization.
// Item prices are copied, not referenced, so later catalog price changes
// never retroactively alter a placed order.
type Order struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	ShippingAddressID uuid.UUID
	Status            OrderStatus
	TotalPriceInCents int64
	Items             []*OrderItem
	CreatedAt         time.Time
}

// OrderItem is one line of an order snapshot.
type OrderItem struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	ProductVariantID uuid.UUID
	ProductName      string
	VariantName      string
	PriceInCents     int64 // Unit price at finalization time.
	Quantity         int
}
