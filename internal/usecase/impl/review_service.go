package impl

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minRating = 1
	maxRating = 5
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
}

func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
	}
}

func (srv *reviewService) List(ctx context.Context, productID uint64) (*usecase.ProductReviews, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, mapProductError(err)
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	summary, err := srv.reviewRepo.Summary(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise reviews")
	}

	return &usecase.ProductReviews{Reviews: reviews, Summary: summary}, nil
}

func (srv *reviewService) Create(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < minRating || input.Rating > maxRating {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5"))
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, mapProductError(err)
	}

	review := &entity.Review{
		UserID:     input.UserID,
		ProductID:  input.ProductID,
		Rating:     input.Rating,
		ReviewText: strings.TrimSpace(input.ReviewText),
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}
