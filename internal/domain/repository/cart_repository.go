package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCartItemNotFound is returned when a cart row does not exist for the user.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists cart rows. Every operation is scoped to the owning user.
type CartRepository interface {
	// ListByUser returns the user's rows joined with product fields.
	ListByUser(ctx context.Context, userID uint64) ([]*entity.CartItem, error)

	// FindByUserAndProduct returns the row for a product in the user's cart.
	FindByUserAndProduct(ctx context.Context, userID, productID uint64) (*entity.CartItem, error)

	// FindByID returns one of the user's rows.
	FindByID(ctx context.Context, userID, itemID uint64) (*entity.CartItem, error)

	// AddQuantity inserts a row or adds quantity to the existing one.
	AddQuantity(ctx context.Context, userID, productID uint64, quantity int) error

	// SetQuantity overwrites the quantity. Returns ErrCartItemNotFound when no row matched.
	SetQuantity(ctx context.Context, userID, itemID uint64, quantity int) error

	// Delete returns ErrCartItemNotFound when no row matched.
	Delete(ctx context.Context, userID, itemID uint64) error

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID uint64) error
}
