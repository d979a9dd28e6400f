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

// productRepository implements repository.ProductRepository using GORM.
// The catalog is read-only from this service's point of view.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productModel := range productModels {
		products = append(products, toProductEntity(productModel))
	}

	return products, nil
}

func (r *productRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantModel model.ProductVariantModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&variantModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find product variant by id")
	}

	return toVariantEntity(&variantModel), nil
}

func (r *productRepository) FindVariantBySlug(ctx context.Context, slug string) (*entity.ProductVariant, error) {
	var variantModel model.ProductVariantModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("slug = ?", slug).
		First(&variantModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find product variant by slug")
	}

	return toVariantEntity(&variantModel), nil
}

func toProductEntity(productModel *model.ProductModel) *entity.Product {
	variants := make([]*entity.ProductVariant, 0, len(productModel.Variants))
	for _, variantModel := range productModel.Variants {
		variant := toVariantEntity(variantModel)
		variant.ProductName = productModel.Name
		variants = append(variants, variant)
	}

	return &entity.Product{
		ID:          productModel.ID,
		Name:        productModel.Name,
		Slug:        productModel.Slug,
		Description: productModel.Description,
		Variants:    variants,
		CreatedAt:   productModel.CreatedAt,
	}
}

func toVariantEntity(variantModel *model.ProductVariantModel) *entity.ProductVariant {
	variant := &entity.ProductVariant{
		ID:           variantModel.ID,
		ProductID:    variantModel.ProductID,
		Name:         variantModel.Name,
		Slug:         variantModel.Slug,
		Color:        variantModel.Color,
		PriceInCents: variantModel.PriceInCents,
		ImageURL:     variantModel.ImageURL,
		CreatedAt:    variantModel.CreatedAt,
	}
	if variantModel.Product != nil {
		variant.ProductName = variantModel.Product.Name
	}

	return variant
}
