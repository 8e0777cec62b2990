package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase manages the authenticated user's cart. Every call is scoped to userID.
type CartUsecase interface {
	List(ctx context.Context, userID uint64) ([]*entity.CartItem, error)
	Add(ctx context.Context, userID, productID uint64, quantity int) error
	UpdateQuantity(ctx context.Context, userID, itemID uint64, quantity int) error
	Remove(ctx context.Context, userID, itemID uint64) error
	Clear(ctx context.Context, userID uint64) error
}
