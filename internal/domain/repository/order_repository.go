package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when no order matches the id (and owner, where scoped).
var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error

	// FindByIDForUser returns the order only if it belongs to userID.
	FindByIDForUser(ctx context.Context, id, userID uint64) (*entity.Order, error)

	// FindByIDForUserForUpdate is FindByIDForUser with a row lock.
	FindByIDForUserForUpdate(ctx context.Context, id, userID uint64) (*entity.Order, error)

	// ListByUser pages through a user's orders. The query must already be sanitised.
	ListByUser(ctx context.Context, query entity.OrderListQuery) ([]*entity.Order, error)

	UpdateStatus(ctx context.Context, id uint64, status entity.OrderStatus) error

	// Recent returns the latest orders across all users.
	Recent(ctx context.Context, limit int) ([]*entity.Order, error)
}
