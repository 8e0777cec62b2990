package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) List(ctx context.Context, userID uint64) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return items, nil
}

// Add locks the product row so the stock check and the upsert see the same stock.
func (srv *cartService) Add(ctx context.Context, userID, productID uint64, quantity int) error {
	if quantity < 1 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1"))
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		product, err := factory.NewProductRepository().FindByIDForUpdate(ctx, productID)
		if err != nil {
			return mapProductError(err)
		}

		cartRepo := factory.NewCartRepository()
		inCart := 0
		existing, err := cartRepo.FindByUserAndProduct(ctx, userID, productID)
		switch {
		case err == nil:
			inCart = existing.Quantity
		case !errors.Is(err, repository.ErrCartItemNotFound):
			return errors.Wrap(err, "failed to find cart item")
		}

		if !product.InStock(inCart + quantity) {
			return errors.WithStack(domainerrors.ErrInsufficientStock)
		}

		return errors.Wrap(cartRepo.AddQuantity(ctx, userID, productID, quantity), "failed to add cart item")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Cart item added",
		slog.Uint64("userID", userID),
		slog.Uint64("productID", productID),
		slog.Int("quantity", quantity))

	return nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID, itemID uint64, quantity int) error {
	if quantity < 1 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1"))
	}

	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		cartRepo := factory.NewCartRepository()
		item, err := cartRepo.FindByID(ctx, userID, itemID)
		if err != nil {
			return mapCartError(err)
		}

		product, err := factory.NewProductRepository().FindByIDForUpdate(ctx, item.ProductID)
		if err != nil {
			return mapProductError(err)
		}
		if !product.InStock(quantity) {
			return errors.WithStack(domainerrors.ErrInsufficientStock)
		}

		if err := cartRepo.SetQuantity(ctx, userID, itemID, quantity); err != nil {
			return mapCartError(err)
		}

		return nil
	})
}

func (srv *cartService) Remove(ctx context.Context, userID, itemID uint64) error {
	if err := srv.cartRepo.Delete(ctx, userID, itemID); err != nil {
		return mapCartError(err)
	}

	return nil
}

func (srv *cartService) Clear(ctx context.Context, userID uint64) error {
	return errors.Wrap(srv.cartRepo.Clear(ctx, userID), "failed to clear cart")
}

func mapCartError(err error) error {
	if errors.Is(err, repository.ErrCartItemNotFound) {
		return errors.WithStack(domainerrors.ErrCartItemNotFound)
	}

	return errors.Wrap(err, "cart repository")
}
