package mysql

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) withProduct(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("cart_items AS ci").
		Select("ci.*, p.name, p.price, p.image_url, p.stock").
		Joins("JOIN products AS p ON p.id = ci.product_id")
}

func (repo *cartRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.CartItem, error) {
	var rows []model.CartItemRow
	err := repo.withProduct(ctx).
		Where("ci.user_id = ?", userID).
		Order("ci.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.CartItem, 0, len(rows))
	for i := range rows {
		items = append(items, toCartItemDomain(&rows[i]))
	}

	return items, nil
}

func (repo *cartRepository) FindByUserAndProduct(ctx context.Context, userID, productID uint64) (*entity.CartItem, error) {
	return repo.findOne(ctx, "ci.user_id = ? AND ci.product_id = ?", userID, productID)
}

func (repo *cartRepository) FindByID(ctx context.Context, userID, itemID uint64) (*entity.CartItem, error) {
	return repo.findOne(ctx, "ci.user_id = ? AND ci.id = ?", userID, itemID)
}

func (repo *cartRepository) findOne(ctx context.Context, cond string, args ...any) (*entity.CartItem, error) {
	var row model.CartItemRow
	if err := repo.withProduct(ctx).Where(cond, args...).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toCartItemDomain(&row), nil
}

// AddQuantity relies on UNIQUE(user_id, product_id) for the upsert.
func (repo *cartRepository) AddQuantity(ctx context.Context, userID, productID uint64, quantity int) error {
	item := &model.CartItemModel{UserID: userID, ProductID: productID, Quantity: quantity}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("quantity + ?", quantity),
			}),
		}).
		Create(item).Error
	if err != nil {
		if isMissingReferenceViolation(err) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return translateWriteError(err, "failed to add cart item")
	}

	return nil
}

func (repo *cartRepository) SetQuantity(ctx context.Context, userID, itemID uint64, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, userID, itemID uint64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func (repo *cartRepository) Clear(ctx context.Context, userID uint64) error {
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}

func toCartItemDomain(data *model.CartItemRow) *entity.CartItem {
	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Name:      data.Name,
		Price:     data.Price,
		ImageURL:  data.ImageURL,
		Stock:     data.Stock,
		CreatedAt: data.CreatedAt,
	}
}
