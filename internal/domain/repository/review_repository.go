package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

type ReviewRepository interface {
	// ListByProduct returns reviews newest first, with the author's username.
	ListByProduct(ctx context.Context, productID uint64) ([]*entity.Review, error)

	// Summary aggregates rating statistics for a product.
	Summary(ctx context.Context, productID uint64) (*entity.ReviewSummary, error)

	// Create fails with domain ErrReviewAlreadyExists on a duplicate (user, product).
	Create(ctx context.Context, review *entity.Review) error
}
