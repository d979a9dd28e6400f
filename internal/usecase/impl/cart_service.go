// Package impl contains the application-specific business rules implementations.
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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	cartRepo repository.CartRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		cartRepo:  cartRepo,
		logger:    logger,
	}
}

// GetCart returns the user's open cart, or an empty view when none exists.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartOutput, error) {
	srv.logger.Debug("Getting cart", slog.Any("userID", userID))

	// Single read - use direct repository instance.
	cart, err := srv.cartRepo.FindOpenByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return emptyCartOutput(), nil
		}

		return nil, errors.Wrap(err, "failed to get cart")
	}

	return toCartOutput(cart), nil
}

// AddItem puts a variant into the user's open cart, creating the cart lazily
// and merging into an existing line when the variant is already there.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddItemInput) (*usecase.CartOutput, error) {
	srv.logger.Debug("Adding cart item", slog.Any("userID", userID), slog.Any("variantID", input.ProductVariantID), slog.Int("quantity", input.Quantity))

	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be at least one")
	}

	var output *usecase.CartOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		carts := repoFactory.Carts()

		variant, err := repoFactory.Products().FindVariantByID(ctx, input.ProductVariantID)
		if err != nil {
			if errors.Is(err, repository.ErrVariantNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "product variant not found")
			}

			return errors.Wrap(err, "failed to find product variant")
		}

		cart, err := srv.findOrCreateOpenCart(ctx, carts, userID)
		if err != nil {
			return err
		}

		// One line per (cart, variant): merge instead of duplicating.
		item, err := carts.FindItemByVariant(ctx, cart.ID, variant.ID)
		switch {
		case err == nil:
			if err := carts.UpdateItemQuantity(ctx, item.ID, item.Quantity+input.Quantity); err != nil {
				return errors.Wrap(err, "failed to increment existing cart item")
			}
		case errors.Is(err, repository.ErrCartItemNotFound):
			newItem := &entity.CartItem{
				CartID:           cart.ID,
				ProductVariantID: variant.ID,
				Quantity:         input.Quantity,
			}
			if err := carts.CreateItem(ctx, newItem); err != nil {
				return errors.Wrap(err, "failed to create cart item")
			}
		default:
			return errors.Wrap(err, "failed to find cart item by variant")
		}

		return srv.reloadCart(ctx, carts, cart.ID, &output)
	})

	if err != nil {
		srv.logger.Error("Failed to add cart item", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add item transaction")
	}

	return output, nil
}

// IncreaseItem bumps an existing cart line by one.
func (srv *cartService) IncreaseItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartOutput, error) {
	srv.logger.Debug("Increasing cart item", slog.Any("userID", userID), slog.Any("itemID", itemID))

	var output *usecase.CartOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		carts := repoFactory.Carts()

		item, cart, err := srv.findOwnedItem(ctx, carts, userID, itemID)
		if err != nil {
			return err
		}

		if err := carts.UpdateItemQuantity(ctx, item.ID, item.Quantity+1); err != nil {
			return errors.Wrap(err, "failed to increase cart item quantity")
		}

		return srv.reloadCart(ctx, carts, cart.ID, &output)
	})

	if err != nil {
		srv.logger.Warn("Failed to increase cart item", slog.Any("userID", userID), slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute increase item transaction")
	}

	return output, nil
}

// DecreaseItem lowers a cart line by one, removing the line at quantity one.
func (srv *cartService) DecreaseItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartOutput, error) {
	srv.logger.Debug("Decreasing cart item", slog.Any("userID", userID), slog.Any("itemID", itemID))

	var output *usecase.CartOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		carts := repoFactory.Carts()

		item, cart, err := srv.findOwnedItem(ctx, carts, userID, itemID)
		if err != nil {
			return err
		}

		if item.Quantity <= 1 {
			// Quantity never reaches zero: the row is deleted instead.
			if _, err := carts.DeleteItem(ctx, item.ID); err != nil {
				return errors.Wrap(err, "failed to delete cart item at quantity one")
			}
		} else {
			if err := carts.UpdateItemQuantity(ctx, item.ID, item.Quantity-1); err != nil {
				return errors.Wrap(err, "failed to decrease cart item quantity")
			}
		}

		return srv.reloadCart(ctx, carts, cart.ID, &output)
	})

	if err != nil {
		srv.logger.Warn("Failed to decrease cart item", slog.Any("userID", userID), slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute decrease item transaction")
	}

	return output, nil
}

// RemoveItem deletes a cart line. Removing an already-absent line succeeds,
// so a double-click or a retried request never surfaces an error.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartOutput, error) {
	srv.logger.Debug("Removing cart item", slog.Any("userID", userID), slog.Any("itemID", itemID))

	var output *usecase.CartOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		carts := repoFactory.Carts()

		item, _, err := srv.findOwnedItem(ctx, carts, userID, itemID)
		if errors.Is(err, domainerrors.ErrCartItemNotFound) {
			// Already gone. Report the current cart state as-is.
			return srv.reloadOpenCart(ctx, carts, userID, &output)
		}
		if err != nil {
			return err
		}

		if _, err := carts.DeleteItem(ctx, item.ID); err != nil {
			return errors.Wrap(err, "failed to delete cart item")
		}

		return srv.reloadCart(ctx, carts, item.CartID, &output)
	})

	if err != nil {
		srv.logger.Warn("Failed to remove cart item", slog.Any("userID", userID), slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute remove item transaction")
	}

	return output, nil
}

// SetShippingAddress binds one of the user's addresses to the open cart.
func (srv *cartService) SetShippingAddress(ctx context.Context, userID, addressID uuid.UUID) (*usecase.CartOutput, error) {
	srv.logger.Debug("Binding shipping address to cart", slog.Any("userID", userID), slog.Any("addressID", addressID))

	var output *usecase.CartOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		carts := repoFactory.Carts()

		address, err := repoFactory.Addresses().FindByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "shipping address not found")
			}

			return errors.Wrap(err, "failed to find shipping address")
		}
		if address.UserID != userID {
			return errors.Wrap(domainerrors.ErrAddressOwnershipMismatch, "address belongs to another user")
		}

		cart, err := srv.findOrCreateOpenCart(ctx, carts, userID)
		if err != nil {
			return err
		}

		if err := carts.SetShippingAddress(ctx, cart.ID, address.ID); err != nil {
			return errors.Wrap(err, "failed to set cart shipping address")
		}

		return srv.reloadCart(ctx, carts, cart.ID, &output)
	})

	if err != nil {
		srv.logger.Warn("Failed to bind shipping address", slog.Any("userID", userID), slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute set shipping address transaction")
	}

	return output, nil
}

// findOrCreateOpenCart implements lazy cart creation: the cart row appears on
// the first operation that needs one.
func (srv *cartService) findOrCreateOpenCart(ctx context.Context, carts repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := carts.FindOpenByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find open cart")
	}

	newCart := &entity.Cart{UserID: userID}
	if err := carts.Create(ctx, newCart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}
	srv.logger.Debug("Created new open cart", slog.Any("userID", userID), slog.Any("cartID", newCart.ID))

	return newCart, nil
}

// findOwnedItem loads a cart line and checks it sits in the user's own open
// cart. A line in another user's cart is reported as not found rather than
// forbidden, so item IDs cannot be probed.
func (srv *cartService) findOwnedItem(ctx context.Context, carts repository.CartRepository, userID, itemID uuid.UUID) (*entity.CartItem, *entity.Cart, error) {
	item, err := carts.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find cart item")
	}

	cart, err := carts.FindByID(ctx, item.CartID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load cart for item")
	}
	if cart.UserID != userID {
		return nil, nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item belongs to another user")
	}
	if cart.IsFinalized() {
		return nil, nil, errors.Wrap(domainerrors.ErrCartFinalized, "cart has already been finalized")
	}

	return item, cart, nil
}

func (srv *cartService) reloadCart(ctx context.Context, carts repository.CartRepository, cartID uuid.UUID, output **usecase.CartOutput) error {
	cart, err := carts.FindByID(ctx, cartID)
	if err != nil {
		return errors.Wrap(err, "failed to reload cart")
	}
	*output = toCartOutput(cart)

	return nil
}

func (srv *cartService) reloadOpenCart(ctx context.Context, carts repository.CartRepository, userID uuid.UUID, output **usecase.CartOutput) error {
	cart, err := carts.FindOpenByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			*output = emptyCartOutput()

			return nil
		}

		return errors.Wrap(err, "failed to reload open cart")
	}
	*output = toCartOutput(cart)

	return nil
}
