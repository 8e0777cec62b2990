package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists the valid statuses in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusShipped,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsValid checks if the status is one of OrderStatuses.
func (s OrderStatus) IsValid() bool {
	return slices.Contains(OrderStatuses, s)
}

// ValidOrderStatusList renders the valid statuses as "a, b, c".
func ValidOrderStatusList() string {
	parts := make([]string, len(OrderStatuses))
	for i, s := range OrderStatuses {
		parts[i] = string(s)
	}

	return strings.Join(parts, ", ")
}

// Order is a purchase of a single product line.
type Order struct {
	ID              uint64          `json:"id"`
	UserID          uint64          `json:"user_id"`
	ProductID       uint64          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress string          `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderSort is a whitelisted sort column.
type OrderSort string

const (
	OrderSortCreatedAt   OrderSort = "created_at"
	OrderSortTotalAmount OrderSort = "total_amount"
	OrderSortStatus      OrderSort = "status"
	OrderSortID          OrderSort = "id"
)

// OrderListQuery is a sanitised order listing request.
type OrderListQuery struct {
	UserID     uint64
	Page       int
	Limit      int
	Sort       OrderSort
	Descending bool
}

// Offset is the row offset for the requested page.
func (q OrderListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
