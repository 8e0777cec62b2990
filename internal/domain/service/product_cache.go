package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned by ProductCache getters when nothing is cached.
var ErrCacheMiss = errors.New("cache miss")

// ProductCache holds read-mostly product views. Failures are never fatal to callers.
type ProductCache interface {
	GetProduct(ctx context.Context, id uint64) (*entity.Product, error)
	SetProduct(ctx context.Context, product *entity.Product) error
	GetFeatured(ctx context.Context) ([]*entity.Product, error)
	SetFeatured(ctx context.Context, products []*entity.Product) error
	// Invalidate drops the product entry and the featured list.
	Invalidate(ctx context.Context, id uint64) error
}
