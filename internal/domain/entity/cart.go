package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one product line in a user's cart, joined with the product
// fields the cart view shows.
type CartItem struct {
	ID        uint64          `json:"id"`
	UserID    uint64          `json:"-"`
	ProductID uint64          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// Subtotal is the line price for the current quantity.
func (c *CartItem) Subtotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
