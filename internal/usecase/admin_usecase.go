package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// Dashboard is the admin landing view.
type Dashboard struct {
	Stats        *entity.DashboardStats
	RecentOrders []*entity.Order
}

type AdminUsecase interface {
	Customers(ctx context.Context) ([]*entity.Customer, error)
	SalesReport(ctx context.Context) (*entity.SalesReport, error)
	MonthlySales(ctx context.Context) ([]*entity.MonthlySales, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	// SetUserActive toggles a customer account; deactivation ends its sessions.
	SetUserActive(ctx context.Context, userID uint64, active bool) error
}
