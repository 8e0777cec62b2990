package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement matched no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository persists the catalog. Reads include the category name.
type ProductRepository interface {
	// List returns products newest first, narrowed by the filter.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	FindByID(ctx context.Context, id uint64) (*entity.Product, error)

	// FindByIDForUpdate locks the row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uint64) (*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error

	// Update overwrites every editable column. Returns ErrProductNotFound when no row matched.
	Update(ctx context.Context, product *entity.Product) error

	// Delete returns ErrProductNotFound when no row matched.
	Delete(ctx context.Context, id uint64) error

	// DecreaseStock subtracts quantity only if enough stock remains.
	// Returns ErrInsufficientStock when the guard fails.
	DecreaseStock(ctx context.Context, id uint64, quantity int) error

	// IncreaseStock adds quantity back, e.g. when an order is cancelled.
	IncreaseStock(ctx context.Context, id uint64, quantity int) error

	Count(ctx context.Context) (int64, error)
}
