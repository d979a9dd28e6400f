package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ShippingAddressID uuid.UUID `gorm:"type:uuid;not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalPriceInCents int64     `gorm:"not null"`
	Items             []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Prices and names are copies taken at finalization, not live references.
type OrderItemModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductVariantID uuid.UUID `gorm:"type:uuid;not null"`
	ProductName      string    `gorm:"type:varchar(255);not null"`
	VariantName      string    `gorm:"type:varchar(255);not null"`
	PriceInCents     int64     `gorm:"not null"`
	Quantity         int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
