package impl

import (
	"context"
	"log/slog"

	"bewear/internal/domain/entity"
	domainerrors "bewear/internal/domain/errors"
	"bewear/internal/domain/repository"
	"bewear/internal/usecase"
	"bewear/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: txManager,
		logger:    logger,
	}
}

// FinishOrder turns the user's open cart into an order snapshot.
//
// Everything runs in one transaction: the cart read, the validations, the
// conditional status flip and the order insert. Two concurrent finish requests
// therefore race on the status flip, and exactly one of them creates an order.
func (srv *checkoutService) FinishOrder(ctx context.Context, userID uuid.UUID) (*usecase.FinishOrderOutput, error) {
	srv.logger.Info("Finishing order", slog.Any("userID", userID))

	var output *usecase.FinishOrderOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		carts := repoFactory.Carts()

		cart, err := carts.FindOpenByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				// No open cart and an empty cart are the same thing to checkout.
				return errors.Wrap(domainerrors.ErrEmptyCart, "user has no open cart")
			}

			return errors.Wrap(err, "failed to load open cart")
		}

		if len(cart.Items) == 0 {
			return errors.Wrap(domainerrors.ErrEmptyCart, "cart has no items")
		}
		if cart.ShippingAddressID == nil {
			return errors.Wrap(domainerrors.ErrMissingShippingAddress, "cart has no shipping address bound")
		}

		// Flip the status first. The conditional update is the arbiter between
		// concurrent finish requests for the same cart.
		if err := carts.Finalize(ctx, cart.ID); err != nil {
			if errors.Is(err, repository.ErrCartAlreadyFinalized) {
				return errors.Wrap(domainerrors.ErrCartFinalized, "cart was finalized by a concurrent request")
			}

			return errors.Wrap(err, "failed to finalize cart")
		}

		order := buildOrderSnapshot(cart)
		if err := repoFactory.Orders().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order from cart")
		}

		output = &usecase.FinishOrderOutput{
			OrderID:           order.ID,
			Status:            string(order.Status),
			TotalPriceInCents: order.TotalPriceInCents,
			FormattedTotal:    util.FormatCentsToBRL(order.TotalPriceInCents),
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Failed to finish order", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute finish order transaction")
	}

	srv.logger.Info("Order finished", slog.Any("userID", userID), slog.Any("orderID", output.OrderID))

	return output, nil
}

// buildOrderSnapshot copies the cart lines into order items. Prices and names
// are frozen here: later catalog edits never touch a placed order.
func buildOrderSnapshot(cart *entity.Cart) *entity.Order {
	items := make([]*entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, &entity.OrderItem{
			ProductVariantID: line.ProductVariantID,
			ProductName:      line.ProductName,
			VariantName:      line.VariantName,
			PriceInCents:     line.PriceInCents,
			Quantity:         line.Quantity,
		})
	}

	return &entity.Order{
		UserID:            cart.UserID,
		ShippingAddressID: *cart.ShippingAddressID,
		Status:            entity.OrderStatusPending,
		TotalPriceInCents: cart.TotalInCents(),
		Items:             items,
	}
}
