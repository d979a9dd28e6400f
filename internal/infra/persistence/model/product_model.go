package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	Variants    []*ProductVariantModel `gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel is the GORM-specific struct for the 'product_variants' table.
type ProductVariantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Product      *ProductModel
	Name         string `gorm:"type:varchar(255);not null"`
	Slug         string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Color        string `gorm:"type:varchar(100)"`
	PriceInCents int64  `gorm:"not null;check:price_in_cents >= 0"`
	ImageURL     string `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}
