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

// cartRepository implements repository.CartRepository using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) FindOpenByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartModel model.CartModel
	err := r.db.WithContext(ctx).
		Preload("Items.ProductVariant.Product").
		Preload("ShippingAddress").
		Where("user_id = ? AND status = ?", userID, entity.CartStatusOpen.String()).
		First(&cartModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find open cart by user id")
	}

	return toCartEntity(&cartModel), nil
}

func (r *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	var cartModel model.CartModel
	err := r.db.WithContext(ctx).
		Preload("Items.ProductVariant.Product").
		Preload("ShippingAddress").
		First(&cartModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by id")
	}

	return toCartEntity(&cartModel), nil
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartModel := &model.CartModel{
		UserID: cart.UserID,
		Status: entity.CartStatusOpen.String(),
	}
	if err := r.db.WithContext(ctx).Create(cartModel).Error; err != nil {
		return errors.Wrap(err, "failed to create cart")
	}

	cart.ID = cartModel.ID
	cart.Status = entity.CartStatusOpen
	cart.CreatedAt = cartModel.CreatedAt
	cart.UpdatedAt = cartModel.UpdatedAt

	return nil
}

func (r *cartRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error) {
	var itemModel model.CartItemModel
	err := r.db.WithContext(ctx).
		Preload("ProductVariant.Product").
		First(&itemModel, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartItemEntity(&itemModel), nil
}

func (r *cartRepository) FindItemByVariant(ctx context.Context, cartID, variantID uuid.UUID) (*entity.CartItem, error) {
	var itemModel model.CartItemModel
	err := r.db.WithContext(ctx).
		Preload("ProductVariant.Product").
		Where("cart_id = ? AND product_variant_id = ?", cartID, variantID).
		First(&itemModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by variant")
	}

	return toCartItemEntity(&itemModel), nil
}

func (r *cartRepository) CreateItem(ctx context.Context, item *entity.CartItem) error {
	itemModel := &model.CartItemModel{
		CartID:           item.CartID,
		ProductVariantID: item.ProductVariantID,
		Quantity:         item.Quantity,
	}
	if err := r.db.WithContext(ctx).Create(itemModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The (cart, variant) row appeared concurrently. Surface it as the
			// existing item so the caller can retry with an increment.
			return errors.Wrap(err, "cart item already exists for variant")
		}

		return errors.Wrap(err, "failed to create cart item")
	}

	item.ID = itemModel.ID
	item.CreatedAt = itemModel.CreatedAt
	item.UpdatedAt = itemModel.UpdatedAt

	return nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "id = ?", itemID)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete cart item")
	}

	return result.RowsAffected > 0, nil
}

func (r *cartRepository) SetShippingAddress(ctx context.Context, cartID, addressID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cartID).
		Update("shipping_address_id", addressID)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrAddressNotFound
		}

		return errors.Wrap(result.Error, "failed to set cart shipping address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

func (r *cartRepository) Finalize(ctx context.Context, cartID uuid.UUID) error {
	// Conditional update: only an open cart can be finalized. A zero row count
	// means another request already finalized it, which the caller must treat
	// as a conflict rather than silently placing a second order.
	result := r.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ? AND status = ?", cartID, entity.CartStatusOpen.String()).
		Update("status", entity.CartStatusFinalized.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to finalize cart")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartAlreadyFinalized
	}

	return nil
}

// toCartEntity converts a GORM cart model (with preloaded associations)
// into a domain entity.
func toCartEntity(cartModel *model.CartModel) *entity.Cart {
	items := make([]*entity.CartItem, 0, len(cartModel.Items))
	for _, itemModel := range cartModel.Items {
		items = append(items, toCartItemEntity(itemModel))
	}

	cart := &entity.Cart{
		ID:                cartModel.ID,
		UserID:            cartModel.UserID,
		ShippingAddressID: cartModel.ShippingAddressID,
		Status:            entity.CartStatus(cartModel.Status),
		Items:             items,
		CreatedAt:         cartModel.CreatedAt,
		UpdatedAt:         cartModel.UpdatedAt,
	}
	if cartModel.ShippingAddress != nil {
		cart.ShippingAddress = toAddressEntity(cartModel.ShippingAddress)
	}

	return cart
}

// toCartItemEntity converts a GORM cart item model into a domain entity,
// denormalizing the joined variant data when it was preloaded.
func toCartItemEntity(itemModel *model.CartItemModel) *entity.CartItem {
	item := &entity.CartItem{
		ID:               itemModel.ID,
		CartID:           itemModel.CartID,
		ProductVariantID: itemModel.ProductVariantID,
		Quantity:         itemModel.Quantity,
		CreatedAt:        itemModel.CreatedAt,
		UpdatedAt:        itemModel.UpdatedAt,
	}
	if variant := itemModel.ProductVariant; variant != nil {
		item.VariantName = variant.Name
		item.PriceInCents = variant.PriceInCents
		item.ImageURL = variant.ImageURL
		if variant.Product != nil {
			item.ProductName = variant.Product.Name
		}
	}

	return item
}
