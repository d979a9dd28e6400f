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

func TestUserService_Register_Success(t *testing.T) {
	users := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokens := &mockTokenService{}
	service := NewUserService(users, hasher, tokens, newTestLogger())

	ctx := context.Background()

	hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	users.On("Create", ctx, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = uuid.New()
	}).Return(nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", output.User.Email)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	users := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokens := &mockTokenService{}
	service := NewUserService(users, hasher, tokens, newTestLogger())

	ctx := context.Background()

	hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	users.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(domainerrors.ErrUserAlreadyExists)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	users := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokens := &mockTokenService{}
	service := NewUserService(users, hasher, tokens, newTestLogger())

	hasher.On("Hash", "s3cret-pass").Return("", errors.New("bcrypt failure"))

	_, err := service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "maria@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	users := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokens := &mockTokenService{}
	service := NewUserService(users, hasher, tokens, newTestLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "maria@example.com", PasswordHash: "hashed"}

	users.On("FindByEmail", ctx, "maria@example.com").Return(user, nil)
	hasher.On("Check", "s3cret-pass", "hashed").Return(true)
	tokens.On("GenerateTokens", user.ID).Return("access-token", "refresh-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Email: "maria@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	users := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokens := &mockTokenService{}
	service := NewUserService(users, hasher, tokens, newTestLogger())

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "maria@example.com", PasswordHash: "hashed"}

	users.On("FindByEmail", ctx, "maria@example.com").Return(user, nil)
	hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "maria@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	tokens.AssertNotCalled(t, "GenerateTokens", mock.Anything)
}

func TestUserService_Login_UnknownEmailSameError(t *testing.T) {
	users := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	tokens := &mockTokenService{}
	service := NewUserService(users, hasher, tokens, newTestLogger())

	ctx := context.Background()

	users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	// Unknown email and wrong password are indistinguishable to the client.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
