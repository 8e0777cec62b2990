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

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		UserID:          order.UserID,
		ProductID:       order.ProductID,
		Quantity:        order.Quantity,
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		ShippingAddress: order.ShippingAddress,
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isMissingReferenceViolation(err) {
			return errors.WithStack(domainerrors.ErrProductNotFound)
		}

		return translateWriteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByIDForUser(ctx context.Context, id, userID uint64) (*entity.Order, error) {
	return repo.findForUser(repo.db.WithContext(ctx), id, userID)
}

func (repo *orderRepository) FindByIDForUserForUpdate(ctx context.Context, id, userID uint64) (*entity.Order, error) {
	return repo.findForUser(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id, userID)
}

func (repo *orderRepository) findForUser(db *gorm.DB, id, userID uint64) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := db.Where("id = ? AND user_id = ?", id, userID).Take(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser orders by a whitelisted column; the sort value never reaches SQL as raw text.
func (repo *orderRepository) ListByUser(ctx context.Context, query entity.OrderListQuery) ([]*entity.Order, error) {
	var rows []model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", query.UserID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: string(query.Sort)}, Desc: query.Descending}).
		Limit(query.Limit).
		Offset(query.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrdersDomain(rows), nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uint64, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) Recent(ctx context.Context, limit int) ([]*entity.Order, error) {
	var rows []model.OrderModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return toOrdersDomain(rows), nil
}

func toOrdersDomain(rows []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderDomain(&rows[i]))
	}

	return orders
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		ProductID:       data.ProductID,
		Quantity:        data.Quantity,
		TotalAmount:     data.TotalAmount,
		Status:          entity.OrderStatus(data.Status),
		ShippingAddress: data.ShippingAddress,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
