package postgres

import (
	"strings"

	domainerrors "cms/internal/domain/errors"
	"cms/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE of a unique constraint violation.
const pgUniqueViolation = "23505"

// translateError maps driver errors to repository errors.
func translateError(err error, details string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrItemNotFound
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicateItem, details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func isUniqueConstraintViolation(err error) bool {
	// Effective when the dialector translates errors; the SQLSTATE check covers raw driver errors.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), pgUniqueViolation)
}
