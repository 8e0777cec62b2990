package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ListOrdersInput is the raw listing request; values are sanitised by the usecase.
type ListOrdersInput struct {
	UserID uint64
	Page   int
	Limit  int
	Sort   string
	Order  string
}

// OrderPage is one page of a user's orders.
type OrderPage struct {
	Orders []*entity.Order
	Page   int
	Limit  int
}

// CreateOrderInput places a single-product order.
type CreateOrderInput struct {
	UserID          uint64
	ProductID       uint64
	Quantity        int
	ShippingAddress string
}

// CheckoutOutput lists the orders created from the cart.
type CheckoutOutput struct {
	OrderIDs    []uint64
	TotalAmount decimal.Decimal
}

type OrderUsecase interface {
	List(ctx context.Context, input ListOrdersInput) (*OrderPage, error)
	Get(ctx context.Context, userID, orderID uint64) (*entity.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	Checkout(ctx context.Context, userID uint64, shippingAddress string) (*CheckoutOutput, error)
	UpdateStatus(ctx context.Context, userID, orderID uint64, status string) (*entity.Order, error)
}
