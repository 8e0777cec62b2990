package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CategoryInput is the editable state of a category.
type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

type CategoryUsecase interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id uint64) (*entity.Category, error)
	// Products fails with ErrCategoryEmpty when the category has no products.
	Products(ctx context.Context, id uint64) ([]*entity.Product, error)
	Create(ctx context.Context, input CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id uint64, input CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uint64) error
}
