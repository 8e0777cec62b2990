package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemModel mirrors the 'cart_items' table.
type CartItemModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uq_cart_user_product"`
	ProductID uint64 `gorm:"not null;uniqueIndex:uq_cart_user_product"`
	Quantity  int    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// CartItemRow is a cart row joined with product fields.
type CartItemRow struct {
	CartItemModel
	Name     string
	Price    decimal.Decimal
	ImageURL string `gorm:"column:image_url"`
	Stock    int
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement"`
	UserID          uint64          `gorm:"not null;index"`
	ProductID       uint64          `gorm:"not null;index"`
	Quantity        int             `gorm:"not null"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:pending"`
	ShippingAddress string          `gorm:"type:varchar(255);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
