package postgres

import (
	"context"

	"bewear/internal/domain/entity"
	"bewear/internal/domain/repository"
	"bewear/internal/errors"
	"bewear/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// orderRepository implements repository.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order together with its item snapshots in one insert.
// GORM cascades the Items association, so the order and its lines land
// together or not at all when called inside txManager.Execute.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := toOrderModel(order)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	for i, itemModel := range orderModel.Items {
		order.Items[i].ID = itemModel.ID
		order.Items[i].OrderID = itemModel.OrderID
	}

	return nil
}

func toOrderModel(order *entity.Order) *model.OrderModel {
	items := make([]*model.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &model.OrderItemModel{
			ProductVariantID: item.ProductVariantID,
			ProductName:      item.ProductName,
			VariantName:      item.VariantName,
			PriceInCents:     item.PriceInCents,
			Quantity:         item.Quantity,
		})
	}

	return &model.OrderModel{
		UserID:            order.UserID,
		ShippingAddressID: order.ShippingAddressID,
		Status:            string(order.Status),
		TotalPriceInCents: order.TotalPriceInCents,
		Items:             items,
	}
}
