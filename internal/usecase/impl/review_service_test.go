package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_List(t *testing.T) {
	reviews := mockRepo.NewMockReviewRepository(t)
	products := mockRepo.NewMockProductRepository(t)
	srv := NewReviewService(ReviewServiceParams{ReviewRepo: reviews, ProductRepo: products})
	ctx := context.Background()

	products.EXPECT().FindByID(ctx, uint64(1)).Return(&entity.Product{ID: 1}, nil)
	reviews.EXPECT().ListByProduct(ctx, uint64(1)).Return([]*entity.Review{{ID: 1, Rating: 4}}, nil)
	reviews.EXPECT().Summary(ctx, uint64(1)).Return(&entity.ReviewSummary{AverageRating: 4, TotalCount: 1}, nil)

	got, err := srv.List(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, got.Reviews, 1)
	assert.Equal(t, 1, got.Summary.TotalCount)
}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rating out of range", func(t *testing.T) {
		srv := NewReviewService(ReviewServiceParams{
			ReviewRepo:  mockRepo.NewMockReviewRepository(t),
			ProductRepo: mockRepo.NewMockProductRepository(t),
		})

		for _, rating := range []int{0, 6} {
			_, err := srv.Create(ctx, usecase.CreateReviewInput{UserID: 1, ProductID: 1, Rating: rating})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		products := mockRepo.NewMockProductRepository(t)
		srv := NewReviewService(ReviewServiceParams{ReviewRepo: mockRepo.NewMockReviewRepository(t), ProductRepo: products})
		products.EXPECT().FindByID(ctx, uint64(9)).Return(nil, repository.ErrProductNotFound)

		_, err := srv.Create(ctx, usecase.CreateReviewInput{UserID: 1, ProductID: 9, Rating: 5})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("duplicate review", func(t *testing.T) {
		reviews := mockRepo.NewMockReviewRepository(t)
		products := mockRepo.NewMockProductRepository(t)
		srv := NewReviewService(ReviewServiceParams{ReviewRepo: reviews, ProductRepo: products})
		products.EXPECT().FindByID(ctx, uint64(2)).Return(&entity.Product{ID: 2}, nil)
		reviews.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(domainerrors.ErrReviewAlreadyExists)

		_, err := srv.Create(ctx, usecase.CreateReviewInput{UserID: 1, ProductID: 2, Rating: 5, ReviewText: "great"})

		assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	})
}
