package impl

import (
	"context"
	"log/slog"

	"bewear/internal/domain/entity"
	domainerrors "bewear/internal/domain/errors"
	"bewear/internal/domain/repository"
	"bewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// CreateAddress registers a new shipping address for the user.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.CreateAddressInput) (*usecase.AddressOutput, error) {
	srv.logger.Debug("Creating shipping address", slog.Any("userID", userID))

	address := &entity.ShippingAddress{
		UserID:        userID,
		RecipientName: input.RecipientName,
		Street:        input.Street,
		Number:        input.Number,
		Complement:    input.Complement,
		Neighborhood:  input.Neighborhood,
		City:          input.City,
		State:         input.State,
		ZipCode:       input.ZipCode,
		Email:         input.Email,
		CPF:           input.CPF,
		Phone:         input.Phone,
	}

	// Single insert - use direct repository instance.
	if err := srv.addressRepo.Create(ctx, address); err != nil {
		srv.logger.Error("Failed to create shipping address", slog.Any("userID", userID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user does not exist")
		}

		return nil, errors.Wrap(err, "failed to create shipping address")
	}

	return toAddressOutput(address), nil
}

// ListAddresses returns all of the user's addresses, newest first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*usecase.AddressOutput, error) {
	srv.logger.Debug("Listing shipping addresses", slog.Any("userID", userID))

	addresses, err := srv.addressRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.logger.Error("Failed to list shipping addresses", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list shipping addresses")
	}

	outputs := make([]*usecase.AddressOutput, 0, len(addresses))
	for _, address := range addresses {
		outputs = append(outputs, toAddressOutput(address))
	}

	return outputs, nil
}
