package repository

import (
	"context"

	"bewear/internal/domain/entity"
)

// OrderRepository defines the interface for order persistence.
// Orders are write-once snapshots; there is no update path here.
type OrderRepository interface {
	// Create persists an order together with its item snapshot rows.
	Create(ctx context.Context, order *entity.Order) error
}
