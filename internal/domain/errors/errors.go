package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Extra context (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a different user-facing message, keeping the code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches on the business code so copies made by WithDetails/WithMessage
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// As extracts the AppError from an error chain.
func As(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// Predefined error types
var (
	// Auth
	ErrNoToken = NewBaseError(http.StatusUnauthorized, "NO_TOKEN",
		"No token provided or invalid format", "")
	ErrTokenExpired = NewBaseError(http.StatusUnauthorized, "TOKEN_EXPIRED",
		"Token expired", "")
	ErrTokenInvalid = NewBaseError(http.StatusUnauthorized, "TOKEN_INVALID",
		"Invalid token", "")
	ErrAuthUserNotFound = NewBaseError(http.StatusUnauthorized, "AUTH_USER_NOT_FOUND",
		"User not found", "")
	ErrUserInactive = NewBaseError(http.StatusUnauthorized, "USER_INACTIVE",
		"User is inactive", "")
	ErrNotLoggedIn = NewBaseError(http.StatusForbidden, "NOT_LOGGED_IN",
		"No user information found. Please log in.", "")
	ErrAdminOnly = NewBaseError(http.StatusForbidden, "ADMIN_ONLY",
		"Access denied: Admins only", "")
	ErrIncorrectPassword = NewBaseError(http.StatusUnauthorized, "INCORRECT_PASSWORD",
		"Incorrect password", "")
	ErrRefreshTokenInvalid = NewBaseError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token", "")
	ErrResetTokenInvalid = NewBaseError(http.StatusBadRequest, "RESET_TOKEN_INVALID",
		"Invalid or expired reset token", "")
	ErrPasswordHashFailed = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED",
		"Error hashing password", "")
	ErrPasswordStrength = NewBaseError(http.StatusBadRequest, "PASSWORD_STRENGTH",
		"Password must be at least 8 characters long and contain a number", "")

	// Users
	ErrUserNotFound = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND",
		"User not found", "")
	ErrEmailNotFound = NewBaseError(http.StatusNotFound, "EMAIL_NOT_FOUND",
		"Email not found", "")
	ErrUserAlreadyExists = NewBaseError(http.StatusBadRequest, "USER_ALREADY_EXISTS",
		"Username or email is already in use", "")

	// Catalog
	ErrProductNotFound = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND",
		"Product not found", "")
	ErrCategoryNotFound = NewBaseError(http.StatusNotFound, "CATEGORY_NOT_FOUND",
		"Category not found", "")
	ErrCategoryEmpty = NewBaseError(http.StatusNotFound, "CATEGORY_EMPTY",
		"No products found for this category.", "")
	ErrCategoryAlreadyExists = NewBaseError(http.StatusConflict, "CATEGORY_ALREADY_EXISTS",
		"Category name is already in use", "")
	ErrCategoryInUse = NewBaseError(http.StatusConflict, "CATEGORY_IN_USE",
		"Category still has products", "")
	ErrReviewAlreadyExists = NewBaseError(http.StatusConflict, "REVIEW_ALREADY_EXISTS",
		"You have already reviewed this product", "")

	// Cart and orders
	ErrInsufficientStock = NewBaseError(http.StatusBadRequest, "INSUFFICIENT_STOCK",
		"Insufficient stock", "")
	ErrCartItemNotFound = NewBaseError(http.StatusNotFound, "CART_ITEM_NOT_FOUND",
		"Cart item not found", "")
	ErrCartEmpty = NewBaseError(http.StatusBadRequest, "CART_EMPTY",
		"Cart is empty", "")
	ErrInvalidOrderInput = NewBaseError(http.StatusBadRequest, "INVALID_ORDER_INPUT",
		"Invalid input: ensure all fields are valid", "")
	ErrInvalidOrderID = NewBaseError(http.StatusBadRequest, "INVALID_ORDER_ID",
		"Invalid order ID", "")
	ErrOrderNotFound = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND",
		"Order not found", "")
	ErrInvalidOrderStatus = NewBaseError(http.StatusBadRequest, "INVALID_ORDER_STATUS",
		"Invalid status: valid statuses are pending, shipped, completed, cancelled", "")
	ErrOrderUpdateForbidden = NewBaseError(http.StatusForbidden, "ORDER_UPDATE_FORBIDDEN",
		"You are not authorized to update this order", "")

	// General
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED",
		"Validation failed", "")
	ErrInvalidID = NewBaseError(http.StatusBadRequest, "INVALID_ID",
		"Invalid ID", "")
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR",
		"Internal server error", "")
	ErrNotFound = NewBaseError(http.StatusNotFound, "NOT_FOUND",
		"Resource not found", "")
	ErrConflict = NewBaseError(http.StatusConflict, "CONFLICT",
		"Resource conflict", "")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
