package mysql

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) SalesReport(ctx context.Context) (*entity.SalesReport, error) {
	var row struct {
		TotalOrders int64
		TotalSales  decimal.NullDecimal
	}
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS total_orders, SUM(total_amount) AS total_sales").
		Scan(&row).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sales report")
	}

	return &entity.SalesReport{
		TotalOrders: row.TotalOrders,
		TotalSales:  nullDecimal(row.TotalSales),
	}, nil
}

func (repo *reportRepository) MonthlySales(ctx context.Context) ([]*entity.MonthlySales, error) {
	var rows []struct {
		Month        int
		MonthlySales decimal.NullDecimal
	}
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("MONTH(created_at) AS month, SUM(total_amount) AS monthly_sales").
		Group("MONTH(created_at)").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to build monthly sales")
	}

	result := make([]*entity.MonthlySales, 0, len(rows))
	for _, r := range rows {
		result = append(result, &entity.MonthlySales{Month: r.Month, MonthlySales: nullDecimal(r.MonthlySales)})
	}

	return result, nil
}

func (repo *reportRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_admin = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return count, nil
}

// nullDecimal turns SUM over zero rows into 0.
func nullDecimal(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}

	return d.Decimal
}
