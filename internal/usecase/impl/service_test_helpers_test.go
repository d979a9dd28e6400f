package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bewear/internal/domain/entity"
	"bewear/internal/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTxManager runs the callback immediately against a fixed factory, so the
// tests exercise the exact repository call sequence without a database.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// stubRepoFactory hands out the test doubles as transaction-bound repositories.
type stubRepoFactory struct {
	carts     repository.CartRepository
	addresses repository.AddressRepository
	products  repository.ProductRepository
	orders    repository.OrderRepository
	users     repository.UserRepository
}

func (f *stubRepoFactory) Carts() repository.CartRepository { return f.carts }

func (f *stubRepoFactory) Addresses() repository.AddressRepository { return f.addresses }

func (f *stubRepoFactory) Products() repository.ProductRepository { return f.products }

func (f *stubRepoFactory) Orders() repository.OrderRepository { return f.orders }

func (f *stubRepoFactory) Users() repository.UserRepository { return f.users }

// --- Repository doubles ---

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) FindOpenByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, userID)
	if cart, ok := args.Get(0).(*entity.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, id)
	if cart, ok := args.Get(0).(*entity.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *mockCartRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error) {
	args := m.Called(ctx, itemID)
	if item, ok := args.Get(0).(*entity.CartItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartRepository) FindItemByVariant(ctx context.Context, cartID, variantID uuid.UUID) (*entity.CartItem, error) {
	args := m.Called(ctx, cartID, variantID)
	if item, ok := args.Get(0).(*entity.CartItem); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartRepository) CreateItem(ctx context.Context, item *entity.CartItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockCartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	args := m.Called(ctx, itemID, quantity)

	return args.Error(0)
}

func (m *mockCartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, itemID)

	return args.Bool(0), args.Error(1)
}

func (m *mockCartRepository) SetShippingAddress(ctx context.Context, cartID, addressID uuid.UUID) error {
	args := m.Called(ctx, cartID, addressID)

	return args.Error(0)
}

func (m *mockCartRepository) Finalize(ctx context.Context, cartID uuid.UUID) error {
	args := m.Called(ctx, cartID)

	return args.Error(0)
}

type mockAddressRepository struct {
	mock.Mock
}

func (m *mockAddressRepository) Create(ctx context.Context, address *entity.ShippingAddress) error {
	args := m.Called(ctx, address)

	return args.Error(0)
}

func (m *mockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error) {
	args := m.Called(ctx, id)
	if address, ok := args.Get(0).(*entity.ShippingAddress); ok {
		return address, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAddressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	args := m.Called(ctx, userID)
	if addresses, ok := args.Get(0).([]*entity.ShippingAddress); ok {
		return addresses, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	args := m.Called(ctx, id)
	if variant, ok := args.Get(0).(*entity.ProductVariant); ok {
		return variant, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepository) FindVariantBySlug(ctx context.Context, slug string) (*entity.ProductVariant, error) {
	args := m.Called(ctx, slug)
	if variant, ok := args.Get(0).(*entity.ProductVariant); ok {
		return variant, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// --- Domain service doubles ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if token, ok := args.Get(0).(*jwt.Token); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
