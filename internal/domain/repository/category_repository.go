package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uint64) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	// Update returns ErrCategoryNotFound when no row matched.
	Update(ctx context.Context, category *entity.Category) error
	// Delete returns ErrCategoryNotFound when no row matched.
	Delete(ctx context.Context, id uint64) error
}
