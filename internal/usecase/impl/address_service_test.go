package impl

import (
	"context"
	"testing"

	"bewear/internal/domain/entity"
	"bewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressService_CreateAddress(t *testing.T) {
	addresses := &mockAddressRepository{}
	service := NewAddressService(addresses, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	complement := "Apto 2"

	addresses.On("Create", ctx, mock.AnythingOfType("*entity.ShippingAddress")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.ShippingAddress).ID = uuid.New()
	}).Return(nil)

	output, err := service.CreateAddress(ctx, userID, &usecase.CreateAddressInput{
		RecipientName: "Maria Silva",
		Street:        "Rua das Flores",
		Number:        "123",
		Complement:    &complement,
		Neighborhood:  "Centro",
		City:          "São Paulo",
		State:         "SP",
		ZipCode:       "01234-567",
		Email:         "maria@example.com",
		CPF:           "123.456.789-00",
		Phone:         "(11) 99999-9999",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.ID)
	assert.Equal(t, "Maria Silva • Rua das Flores, 123, Apto 2, Centro, São Paulo - SP • CEP: 01234-567", output.Formatted)
}

func TestAddressService_ListAddresses(t *testing.T) {
	addresses := &mockAddressRepository{}
	service := NewAddressService(addresses, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()

	addresses.On("FindByUserID", ctx, userID).Return([]*entity.ShippingAddress{
		{ID: uuid.New(), UserID: userID, RecipientName: "Maria Silva", Street: "Rua A", Number: "1", Neighborhood: "Centro", City: "São Paulo", State: "SP", ZipCode: "01234-567"},
		{ID: uuid.New(), UserID: userID, RecipientName: "Maria Silva", Street: "Rua B", Number: "2", Neighborhood: "Lapa", City: "São Paulo", State: "SP", ZipCode: "05075-000"},
	}, nil)

	outputs, err := service.ListAddresses(ctx, userID)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.NotEmpty(t, outputs[0].Formatted)
	assert.NotEmpty(t, outputs[1].Formatted)
}

func TestAddressService_ListAddresses_Empty(t *testing.T) {
	addresses := &mockAddressRepository{}
	service := NewAddressService(addresses, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()

	addresses.On("FindByUserID", ctx, userID).Return([]*entity.ShippingAddress{}, nil)

	outputs, err := service.ListAddresses(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, outputs)
}
