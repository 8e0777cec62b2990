package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"column:image_url;type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CategoryID  *uint64         `gorm:"index"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(255)"`
	IsFeatured  bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductRow is a product joined with its category name.
type ProductRow struct {
	ProductModel
	CategoryName *string
}

// ReviewModel mirrors the 'product_reviews' table.
type ReviewModel struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	UserID     uint64 `gorm:"not null;uniqueIndex:uq_review_user_product"`
	ProductID  uint64 `gorm:"not null;uniqueIndex:uq_review_user_product"`
	Rating     int    `gorm:"not null"`
	ReviewText string `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "product_reviews"
}

// ReviewRow is a review joined with its author's username.
type ReviewRow struct {
	ReviewModel
	Username string
}
