package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddress is a delivery address owned by a user. A user may keep
// several; the one bound to the cart is referenced by the cart itself so
// there is never more than one "selected" address per cart.
type ShippingAddress struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RecipientName string
	Street        string
	Number        string
	Complement    *string // Optional. Nil means no complement line at all.
	Neighborhood  string
	City          string
	State         string
	ZipCode       string
	Email         string
	CPF           string
	Phone         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
