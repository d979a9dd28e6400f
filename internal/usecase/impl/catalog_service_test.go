package impl

import (
	"context"
	"testing"

	"bewear/internal/domain/entity"
	domainerrors "bewear/internal/domain/errors"
	"bewear/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProducts(t *testing.T) {
	products := &mockProductRepository{}
	service := NewCatalogService(products, newTestLogger())

	ctx := context.Background()
	productID := uuid.New()

	products.On("List", ctx).Return([]*entity.Product{
		{
			ID:   productID,
			Name: "Tênis Runner",
			Slug: "tenis-runner",
			Variants: []*entity.ProductVariant{
				{ID: uuid.New(), ProductID: productID, Name: "Preto", Slug: "tenis-runner-preto", PriceInCents: 4500, ImageURL: `{"url":"https://cdn.example.com/a.png"}`},
			},
		},
	}, nil)

	outputs, err := service.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	require.Len(t, outputs[0].Variants, 1)
	assert.Equal(t, "R$ 45,00", outputs[0].Variants[0].FormattedPrice)
	// Malformed JSON-wrapped image URLs are unwrapped before display.
	assert.Equal(t, "https://cdn.example.com/a.png", outputs[0].Variants[0].ImageURL)
}

func TestCatalogService_GetVariantBySlug(t *testing.T) {
	products := &mockProductRepository{}
	service := NewCatalogService(products, newTestLogger())

	ctx := context.Background()

	products.On("FindVariantBySlug", ctx, "tenis-runner-preto").Return(&entity.ProductVariant{
		ID:           uuid.New(),
		ProductName:  "Tênis Runner",
		Name:         "Preto",
		Slug:         "tenis-runner-preto",
		PriceInCents: 4500,
	}, nil)

	output, err := service.GetVariantBySlug(ctx, "tenis-runner-preto")
	require.NoError(t, err)
	assert.Equal(t, "Tênis Runner", output.ProductName)
	assert.Equal(t, "R$ 45,00", output.FormattedPrice)
}

func TestCatalogService_GetVariantBySlug_NotFound(t *testing.T) {
	products := &mockProductRepository{}
	service := NewCatalogService(products, newTestLogger())

	ctx := context.Background()

	products.On("FindVariantBySlug", ctx, "missing").Return(nil, repository.ErrVariantNotFound)

	_, err := service.GetVariantBySlug(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
