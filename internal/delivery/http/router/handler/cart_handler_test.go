package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverymiddleware "bewear/internal/delivery/http/middleware"
	"bewear/internal/delivery/http/validator"
	"bewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCartUsecase struct {
	mock.Mock
}

func (m *mockCartUsecase) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	args := m.Called(ctx, userID)
	if output, ok := args.Get(0).(*usecase.CartOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartUsecase) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddItemInput) (*usecase.CartOutput, error) {
	args := m.Called(ctx, userID, input)
	if output, ok := args.Get(0).(*usecase.CartOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartUsecase) IncreaseItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartOutput, error) {
	args := m.Called(ctx, userID, itemID)
	if output, ok := args.Get(0).(*usecase.CartOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartUsecase) DecreaseItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartOutput, error) {
	args := m.Called(ctx, userID, itemID)
	if output, ok := args.Get(0).(*usecase.CartOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartUsecase) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartOutput, error) {
	args := m.Called(ctx, userID, itemID)
	if output, ok := args.Get(0).(*usecase.CartOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartUsecase) SetShippingAddress(ctx context.Context, userID, addressID uuid.UUID) (*usecase.CartOutput, error) {
	args := m.Called(ctx, userID, addressID)
	if output, ok := args.Get(0).(*usecase.CartOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCartHandler_GetCart(t *testing.T) {
	uc := &mockCartUsecase{}
	handler := NewCartHandler(uc, newHandlerLogger())

	userID := uuid.New()
	uc.On("GetCart", mock.Anything, userID).Return(&usecase.CartOutput{
		Status:         "open",
		Items:          []*usecase.CartItemOutput{},
		FormattedTotal: "R$ 0,00",
	}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(deliverymiddleware.ContextKeyUserID, userID)

	err := handler.GetCart(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"formatted_total":"R$ 0,00"`)
}

func TestCartHandler_GetCart_MissingUser(t *testing.T) {
	uc := &mockCartUsecase{}
	handler := NewCartHandler(uc, newHandlerLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// No userID on the context: the handler must refuse, not panic.
	err := handler.GetCart(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
}

func TestCartHandler_AddItem(t *testing.T) {
	uc := &mockCartUsecase{}
	handler := NewCartHandler(uc, newHandlerLogger())

	userID := uuid.New()
	variantID := uuid.New()
	uc.On("AddItem", mock.Anything, userID, &usecase.AddItemInput{
		ProductVariantID: variantID,
		Quantity:         2,
	}).Return(&usecase.CartOutput{Status: "open"}, nil)

	e := newTestEcho()
	body := `{"product_variant_id":"` + variantID.String() + `","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(deliverymiddleware.ContextKeyUserID, userID)

	err := handler.AddItem(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_AddItem_RejectsZeroQuantity(t *testing.T) {
	uc := &mockCartUsecase{}
	handler := NewCartHandler(uc, newHandlerLogger())

	userID := uuid.New()

	e := newTestEcho()
	body := `{"product_variant_id":"` + uuid.New().String() + `","quantity":0}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(deliverymiddleware.ContextKeyUserID, userID)

	err := handler.AddItem(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
}
