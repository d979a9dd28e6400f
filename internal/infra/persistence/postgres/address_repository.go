package postgres

import (
	"context"

	"bewear/internal/domain/entity"
	"bewear/internal/domain/repository"
	"bewear/internal/errors"
	"bewear/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addressRepository implements repository.AddressRepository using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *entity.ShippingAddress) error {
	addressModel := toAddressModel(address)
	if err := r.db.WithContext(ctx).Create(addressModel).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "shipping address is missing a required field")
		}

		return errors.Wrap(err, "failed to create shipping address")
	}

	address.ID = addressModel.ID
	address.CreatedAt = addressModel.CreatedAt
	address.UpdatedAt = addressModel.UpdatedAt

	return nil
}

func (r *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error) {
	var addressModel model.ShippingAddressModel
	err := r.db.WithContext(ctx).First(&addressModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipping address by id")
	}

	return toAddressEntity(&addressModel), nil
}

func (r *addressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var addressModels []*model.ShippingAddressModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shipping addresses by user id")
	}

	addresses := make([]*entity.ShippingAddress, 0, len(addressModels))
	for _, addressModel := range addressModels {
		addresses = append(addresses, toAddressEntity(addressModel))
	}

	return addresses, nil
}

func toAddressModel(address *entity.ShippingAddress) *model.ShippingAddressModel {
	return &model.ShippingAddressModel{
		ID:            address.ID,
		UserID:        address.UserID,
		RecipientName: address.RecipientName,
		Street:        address.Street,
		Number:        address.Number,
		Complement:    address.Complement,
		Neighborhood:  address.Neighborhood,
		City:          address.City,
		State:         address.State,
		ZipCode:       address.ZipCode,
		Email:         address.Email,
		CPF:           address.CPF,
		Phone:         address.Phone,
	}
}

func toAddressEntity(addressModel *model.ShippingAddressModel) *entity.ShippingAddress {
	return &entity.ShippingAddress{
		ID:            addressModel.ID,
		UserID:        addressModel.UserID,
		RecipientName: addressModel.RecipientName,
		Street:        addressModel.Street,
		Number:        addressModel.Number,
		Complement:    addressModel.Complement,
		Neighborhood:  addressModel.Neighborhood,
		City:          addressModel.City,
		State:         addressModel.State,
		ZipCode:       addressModel.ZipCode,
		Email:         addressModel.Email,
		CPF:           addressModel.CPF,
		Phone:         addressModel.Phone,
		CreatedAt:     addressModel.CreatedAt,
		UpdatedAt:     addressModel.UpdatedAt,
	}
}
