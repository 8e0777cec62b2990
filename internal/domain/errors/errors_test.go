package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesCopies(t *testing.T) {
	withDetails := ErrProductNotFound.WithDetails("id=7")
	wrapped := errors.Wrap(withDetails, "load product")

	assert.ErrorIs(t, wrapped, ErrProductNotFound)
	assert.NotErrorIs(t, wrapped, ErrCategoryNotFound)
	assert.Equal(t, "Product not found: id=7", withDetails.Error())
}

func TestAs(t *testing.T) {
	err := errors.WithStack(ErrInsufficientStock)

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Equal(t, "Insufficient stock", appErr.Message())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "insert order", err.Details())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database execution failed")
}
