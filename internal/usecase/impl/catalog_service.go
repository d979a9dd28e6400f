package impl

import (
	"context"
	"log/slog"

	domainerrors "bewear/internal/domain/errors"
	"bewear/internal/domain/repository"
	"bewear/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts returns the whole catalog with variants.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		srv.logger.Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, toProductOutput(product))
	}

	return outputs, nil
}

// GetVariantBySlug returns a single variant for the product page.
func (srv *catalogService) GetVariantBySlug(ctx context.Context, slug string) (*usecase.VariantOutput, error) {
	variant, err := srv.productRepo.FindVariantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product variant not found")
		}
		srv.logger.Error("Failed to find product variant", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find product variant by slug")
	}

	return toVariantOutput(variant), nil
}
