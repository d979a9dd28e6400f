package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'carts' table.
// The shipping address lives as a FK on the cart so there is exactly one
// bound address per cart, never multiple "default" flags.
type CartModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index:idx_carts_user_status"`
	Status            string     `gorm:"type:varchar(20);not null;default:'open';index:idx_carts_user_status"`
	ShippingAddressID *uuid.UUID `gorm:"type:uuid"`
	ShippingAddress   *ShippingAddressModel
	Items             []*CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// The (cart, variant) pair is unique: adding an existing variant increments
// the row instead of duplicating it.
type CartItemModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CartID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant"`
	ProductVariantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_variant"`
	ProductVariant   *ProductVariantModel
	Quantity         int `gorm:"not null;check:quantity >= 1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
