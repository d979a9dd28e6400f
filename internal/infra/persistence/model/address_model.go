package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddressModel is the GORM-specific struct for the 'shipping_addresses' table.
type ShippingAddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientName string    `gorm:"type:varchar(255);not null"`
	Street        string    `gorm:"type:varchar(255);not null"`
	Number        string    `gorm:"type:varchar(50);not null"`
	Complement    *string   `gorm:"type:varchar(255)"`
	Neighborhood  string    `gorm:"type:varchar(255);not null"`
	City          string    `gorm:"type:varchar(255);not null"`
	State         string    `gorm:"type:varchar(100);not null"`
	ZipCode       string    `gorm:"type:varchar(20);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	CPF           string    `gorm:"column:cpf;type:varchar(20);not null"`
	Phone         string    `gorm:"type:varchar(30);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingAddressModel) TableName() string {
	return "shipping_addresses"
}
