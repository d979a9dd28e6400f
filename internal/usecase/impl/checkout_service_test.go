package impl

import (
	"context"
	"testing"

	"bewear/internal/domain/entity"
	domainerrors "bewear/internal/domain/errors"
	"bewear/internal/domain/repository"
	"bewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutServiceForTest(carts *mockCartRepository, orders *mockOrderRepository) usecase.CheckoutUsecase {
	factory := &stubRepoFactory{
		carts:     carts,
		addresses: &mockAddressRepository{},
		products:  &mockProductRepository{},
		orders:    orders,
		users:     &mockUserRepository{},
	}

	return NewCheckoutService(&stubTxManager{factory: factory}, newTestLogger())
}

func checkoutReadyCart(userID uuid.UUID) *entity.Cart {
	addressID := uuid.New()
	cart := openCartWithItems(userID,
		&entity.CartItem{ID: uuid.New(), ProductVariantID: uuid.New(), Quantity: 2, PriceInCents: 4500, ProductName: "Tênis", VariantName: "Preto"},
		&entity.CartItem{ID: uuid.New(), ProductVariantID: uuid.New(), Quantity: 1, PriceInCents: 19990, ProductName: "Jaqueta", VariantName: "Azul"},
	)
	cart.ShippingAddressID = &addressID

	return cart
}

func TestCheckoutService_FinishOrder_Success(t *testing.T) {
	carts := &mockCartRepository{}
	orders := &mockOrderRepository{}
	service := newCheckoutServiceForTest(carts, orders)

	ctx := context.Background()
	userID := uuid.New()
	cart := checkoutReadyCart(userID)
	orderID := uuid.New()

	carts.On("FindOpenByUserID", ctx, userID).Return(cart, nil)
	carts.On("Finalize", ctx, cart.ID).Return(nil)
	orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Order).ID = orderID
	}).Return(nil)

	output, err := service.FinishOrder(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, orderID, output.OrderID)
	assert.Equal(t, string(entity.OrderStatusPending), output.Status)
	assert.Equal(t, int64(2*4500+19990), output.TotalPriceInCents)
	assert.Equal(t, "R$ 289,90", output.FormattedTotal)
}

func TestCheckoutService_FinishOrder_SnapshotsCartLines(t *testing.T) {
	carts := &mockCartRepository{}
	orders := &mockOrderRepository{}
	service := newCheckoutServiceForTest(carts, orders)

	ctx := context.Background()
	userID := uuid.New()
	cart := checkoutReadyCart(userID)

	var created *entity.Order
	carts.On("FindOpenByUserID", ctx, userID).Return(cart, nil)
	carts.On("Finalize", ctx, cart.ID).Return(nil)
	orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entity.Order)
	}).Return(nil)

	_, err := service.FinishOrder(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Len(t, created.Items, 2)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, *cart.ShippingAddressID, created.ShippingAddressID)
	assert.Equal(t, cart.Items[0].PriceInCents, created.Items[0].PriceInCents)
	assert.Equal(t, cart.Items[0].Quantity, created.Items[0].Quantity)
	assert.Equal(t, "Tênis", created.Items[0].ProductName)
	assert.Equal(t, cart.TotalInCents(), created.TotalPriceInCents)
}

func TestCheckoutService_FinishOrder_NoOpenCart(t *testing.T) {
	carts := &mockCartRepository{}
	orders := &mockOrderRepository{}
	service := newCheckoutServiceForTest(carts, orders)

	ctx := context.Background()
	userID := uuid.New()

	carts.On("FindOpenByUserID", ctx, userID).Return(nil, repository.ErrCartNotFound)

	_, err := service.FinishOrder(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_FinishOrder_EmptyCart(t *testing.T) {
	carts := &mockCartRepository{}
	orders := &mockOrderRepository{}
	service := newCheckoutServiceForTest(carts, orders)

	ctx := context.Background()
	userID := uuid.New()
	cart := openCartWithItems(userID)
	addressID := uuid.New()
	cart.ShippingAddressID = &addressID

	carts.On("FindOpenByUserID", ctx, userID).Return(cart, nil)

	_, err := service.FinishOrder(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyCart))
	carts.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
}

func TestCheckoutService_FinishOrder_MissingShippingAddress(t *testing.T) {
	carts := &mockCartRepository{}
	orders := &mockOrderRepository{}
	service := newCheckoutServiceForTest(carts, orders)

	ctx := context.Background()
	userID := uuid.New()
	cart := openCartWithItems(userID,
		&entity.CartItem{ID: uuid.New(), Quantity: 1, PriceInCents: 4500},
	)

	carts.On("FindOpenByUserID", ctx, userID).Return(cart, nil)

	_, err := service.FinishOrder(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingShippingAddress))
	carts.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything)
}

func TestCheckoutService_FinishOrder_ConcurrentFinalizeLosesRace(t *testing.T) {
	carts := &mockCartRepository{}
	orders := &mockOrderRepository{}
	service := newCheckoutServiceForTest(carts, orders)

	ctx := context.Background()
	userID := uuid.New()
	cart := checkoutReadyCart(userID)

	carts.On("FindOpenByUserID", ctx, userID).Return(cart, nil)
	carts.On("Finalize", ctx, cart.ID).Return(repository.ErrCartAlreadyFinalized)

	_, err := service.FinishOrder(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCartFinalized))
	// The loser of the race must never create a second order.
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
