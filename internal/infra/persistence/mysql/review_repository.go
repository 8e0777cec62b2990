package mysql

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uint64) ([]*entity.Review, error) {
	var rows []model.ReviewRow
	err := repo.db.WithContext(ctx).
		Table("product_reviews AS r").
		Select("r.*, u.username").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Where("r.product_id = ?", productID).
		Order("r.created_at DESC, r.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, &entity.Review{
			ID:         rows[i].ID,
			UserID:     rows[i].UserID,
			Username:   rows[i].Username,
			ProductID:  rows[i].ProductID,
			Rating:     rows[i].Rating,
			ReviewText: rows[i].ReviewText,
			CreatedAt:  rows[i].CreatedAt,
		})
	}

	return reviews, nil
}

func (repo *reviewRepository) Summary(ctx context.Context, productID uint64) (*entity.ReviewSummary, error) {
	var summary entity.ReviewSummary
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS total_count").
		Where("product_id = ?", productID).
		Scan(&summary).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarise reviews")
	}

	return &summary, nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		UserID:     review.UserID,
		ProductID:  review.ProductID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return errors.WithStack(domainerrors.ErrReviewAlreadyExists)
		case isMissingReferenceViolation(err):
			return errors.WithStack(domainerrors.ErrProductNotFound)
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
		default:
			return translateWriteError(err, "failed to create review")
		}
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}
