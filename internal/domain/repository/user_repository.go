// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether either value is taken.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// Create persists a new user; ID and timestamps are filled in on success.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile writes address and password hash.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the password hash.
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error

	// SetActive toggles is_active. Returns ErrUserNotFound when no row matched.
	SetActive(ctx context.Context, id uint64, active bool) error

	// ListCustomers returns all non-admin users, newest first.
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
}
