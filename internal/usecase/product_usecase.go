package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ListProductsInput narrows the catalog listing.
type ListProductsInput struct {
	Query  string
	Limit  int
	Offset int
}

// ProductInput is the full editable state of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  *uint64
	ImageURL    string
	IsFeatured  bool
}

type ProductUsecase interface {
	List(ctx context.Context, input ListProductsInput) ([]*entity.Product, error)
	Featured(ctx context.Context) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID uint64) ([]*entity.Product, error)
	Get(ctx context.Context, id uint64) (*entity.Product, error)
	QRCode(ctx context.Context, id uint64) ([]byte, error)
	Create(ctx context.Context, input ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uint64, input ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uint64) error
}
