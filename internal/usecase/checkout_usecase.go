package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// FinishOrderOutput returns the snapshot created from the finalized cart.
type FinishOrderOutput struct {
	OrderID           uuid.UUID `json:"order_id"`
	Status            string    `json:"status"`
	TotalPriceInCents int64     `json:"total_price_in_cents"`
	FormattedTotal    string    `json:"formatted_total"`
}

// CheckoutUsecase defines the interface for turning an open cart into an order.
type CheckoutUsecase interface {
	// FinishOrder validates the user's open cart (non-empty, address bound),
	// snapshots it into an order and marks the cart finalized. The whole
	// sequence runs in one transaction so a concurrently emptied or already
	// finalized cart can never produce an order.
	FinishOrder(ctx context.Context, userID uuid.UUID) (*FinishOrderOutput, error)
}
