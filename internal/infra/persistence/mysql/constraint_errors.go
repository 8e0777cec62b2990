package mysql

import (
	domainerrors "storefront/internal/domain/errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// MySQL server error numbers for constraint failures.
const (
	erBadNull            = 1048
	erDupEntry           = 1062
	erWarnDataOutOfRange = 1264
	erDataTooLong        = 1406
	erRowIsReferenced    = 1451
	erNoReferencedRow    = 1452
	erCheckConstraintHit = 3819
)

func mysqlErrorNumber(err error) (uint16, bool) {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number, true
	}

	return 0, false
}

func hasErrorNumber(err error, number uint16) bool {
	n, ok := mysqlErrorNumber(err)

	return ok && n == number
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasErrorNumber(err, erDupEntry)
}

// isMissingReferenceViolation reports an insert/update pointing at a row that does not exist.
func isMissingReferenceViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasErrorNumber(err, erNoReferencedRow)
}

// isRowReferencedViolation reports a delete/update blocked by rows that still reference it.
func isRowReferencedViolation(err error) bool {
	return hasErrorNumber(err, erRowIsReferenced)
}

func isNotNullConstraintViolation(err error) bool {
	return hasErrorNumber(err, erBadNull)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || hasErrorNumber(err, erCheckConstraintHit)
}

// isValueTooLarge reports a value that does not fit its column.
func isValueTooLarge(err error) bool {
	return hasErrorNumber(err, erDataTooLong) || hasErrorNumber(err, erWarnDataOutOfRange)
}

// translateWriteError reports oversized input as a validation failure and
// anything else as a database failure.
func translateWriteError(err error, details string) error {
	if isValueTooLarge(err) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("a field exceeds its maximum length"))
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
