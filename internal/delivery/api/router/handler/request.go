// Package handler contains the HTTP handlers for the storefront API.
package handler

import (
	"strconv"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	return nil
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := bind(c, req); err != nil {
		return err
	}

	return c.Validate(req)
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.WithStack(domainerrors.ErrInvalidID.WithDetails(name + " must be a positive integer"))
	}

	return id, nil
}

// queryInt returns the integer query parameter, or fallback when absent or malformed.
func queryInt(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}

	return v
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	IsActive  bool      `json:"is_active"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		IsActive:  user.IsActive,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
	}
}

// orEmpty keeps list responses as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
