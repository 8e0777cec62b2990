package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the admin view of a non-admin account.
type Customer struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// SalesReport aggregates all orders.
type SalesReport struct {
	TotalOrders int64           `json:"totalOrders"`
	TotalSales  decimal.Decimal `json:"totalSales"`
}

// MonthlySales is the order total for one calendar month number (1-12).
type MonthlySales struct {
	Month        int             `json:"month"`
	MonthlySales decimal.Decimal `json:"monthly_sales"`
}

// DashboardStats backs the admin dashboard cards.
type DashboardStats struct {
	TotalOrders    int64           `json:"totalOrders"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalCustomers int64           `json:"totalCustomers"`
	TotalProducts  int64           `json:"totalProducts"`
}
