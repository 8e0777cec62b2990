package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReportRepository runs the aggregate queries behind the admin screens.
type ReportRepository interface {
	SalesReport(ctx context.Context) (*entity.SalesReport, error)
	MonthlySales(ctx context.Context) ([]*entity.MonthlySales, error)
	CountCustomers(ctx context.Context) (int64, error)
}
