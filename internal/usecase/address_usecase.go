package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAddressInput defines the data required to register a shipping address.
type CreateAddressInput struct {
	RecipientName string
	Street        string
	Number        string
	Complement    *string
	Neighborhood  string
	City          string
	State         string
	ZipCode       string
	Email         string
	CPF           string
	Phone         string
}

// --- Output DTOs ---

// AddressOutput is a shipping address prepared for display, including the
// single-line formatted rendering used by cart and checkout views.
type AddressOutput struct {
	ID            uuid.UUID `json:"id"`
	RecipientName string    `json:"recipient_name"`
	Street        string    `json:"street"`
	Number        string    `json:"number"`
	Complement    *string   `json:"complement,omitempty"`
	Neighborhood  string    `json:"neighborhood"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	Email         string    `json:"email"`
	CPF           string    `json:"cpf"`
	Phone         string    `json:"phone"`
	Formatted     string    `json:"formatted"`
	CreatedAt     time.Time `json:"created_at"`
}

// AddressUsecase defines the interface for shipping-address business operations.
type AddressUsecase interface {
	// CreateAddress registers a new shipping address for the user.
	CreateAddress(ctx context.Context, userID uuid.UUID, input *CreateAddressInput) (*AddressOutput, error)

	// ListAddresses returns all of the user's addresses, newest first.
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*AddressOutput, error)
}
