package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateReviewInput is one user's rating of a product.
type CreateReviewInput struct {
	UserID     uint64
	ProductID  uint64
	Rating     int
	ReviewText string
}

// ProductReviews is a product's reviews with their summary.
type ProductReviews struct {
	Reviews []*entity.Review
	Summary *entity.ReviewSummary
}

type ReviewUsecase interface {
	List(ctx context.Context, productID uint64) (*ProductReviews, error)
	Create(ctx context.Context, input CreateReviewInput) (*entity.Review, error)
}
