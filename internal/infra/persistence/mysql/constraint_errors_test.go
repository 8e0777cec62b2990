package mysql

import (
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintErrors(t *testing.T) {
	dup := errors.Wrap(&mysqldriver.MySQLError{Number: erDupEntry, Message: "Duplicate entry 'a' for key 'username'"}, "insert")
	missingRef := &mysqldriver.MySQLError{Number: erNoReferencedRow, Message: "Cannot add or update a child row"}
	referenced := &mysqldriver.MySQLError{Number: erRowIsReferenced, Message: "Cannot delete or update a parent row"}
	check := &mysqldriver.MySQLError{Number: erCheckConstraintHit, Message: "Check constraint 'chk_stock' is violated."}
	badNull := &mysqldriver.MySQLError{Number: erBadNull, Message: "Column 'name' cannot be null"}

	assert.True(t, isUniqueConstraintViolation(dup))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(missingRef))

	assert.True(t, isMissingReferenceViolation(missingRef))
	assert.True(t, isMissingReferenceViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isMissingReferenceViolation(referenced))

	assert.True(t, isRowReferencedViolation(referenced))
	assert.False(t, isRowReferencedViolation(dup))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isNotNullConstraintViolation(badNull))

	plain := errors.New("connection refused")
	assert.False(t, isUniqueConstraintViolation(plain))
	assert.False(t, isCheckConstraintViolation(plain))
	_, ok := mysqlErrorNumber(plain)
	assert.False(t, ok)
}

func TestTranslateWriteError(t *testing.T) {
	tooLong := errors.Wrap(&mysqldriver.MySQLError{Number: erDataTooLong, Message: "Data too long for column 'username' at row 1"}, "insert")
	outOfRange := &mysqldriver.MySQLError{Number: erWarnDataOutOfRange, Message: "Out of range value for column 'quantity' at row 1"}

	for _, err := range []error{tooLong, outOfRange} {
		translated := translateWriteError(err, "failed to create user")

		assert.ErrorIs(t, translated, domainerrors.ErrValidationFailed)
		appErr, ok := domainerrors.As(translated)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		}
	}

	translated := translateWriteError(errors.New("connection reset"), "failed to create user")
	appErr, ok := domainerrors.As(translated)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	}
}
