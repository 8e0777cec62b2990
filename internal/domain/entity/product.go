package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. Stock never drops below zero.
type Product struct {
	ID           uint64          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   *uint64         `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	ImageURL     string          `json:"image_url"`
	IsFeatured   bool            `json:"is_featured"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InStock reports whether quantity units can be taken from the current stock.
func (p *Product) InStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}

// ProductFilter narrows product listings.
type ProductFilter struct {
	Query      string
	CategoryID *uint64
	Featured   bool
	Limit      int
	Offset     int
}
