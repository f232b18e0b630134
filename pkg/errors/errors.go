package errors

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether err is a GORM record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate reports whether err is a unique-constraint violation.
// Requires gorm.Config.TranslateError so the Postgres driver error is
// normalized to gorm.ErrDuplicatedKey.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation reports whether err is a foreign-key violation,
// e.g. deleting a school that still has users (ON DELETE RESTRICT).
func IsForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
