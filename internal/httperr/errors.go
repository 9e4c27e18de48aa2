package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/domain"
)

type Category string

const (
	CategoryValidation       Category = "validation_error"
	CategoryNotFound         Category = "not_found"
	CategoryConflict         Category = "constraint_violation"
	CategoryInvalidReference Category = "invalid_reference"
	CategoryColumnMissing    Category = "column_missing"
	CategoryPersistence      Category = "persistence_error"
)

// PostgreSQL SQLSTATE codes the gateway distinguishes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgUndefinedColumn     = "42703"
)

type Error struct {
	Category Category
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) error {
	return &Error{Category: CategoryValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundErr(entity string) error {
	return &Error{Category: CategoryNotFound, Message: entity + " not found"}
}

func InvalidReference(format string, args ...any) error {
	return &Error{Category: CategoryInvalidReference, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err classifies into the given category.
func Is(err error, cat Category) bool {
	if err == nil {
		return false
	}
	return Classify(err).Category == cat
}

// Classify maps gateway errors onto the taxonomy. Errors that already carry
// a category are returned unchanged.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return &Error{Category: CategoryValidation, Message: ve.Message, Err: err}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Category: CategoryNotFound, Message: "record not found", Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &Error{Category: CategoryConflict, Message: "duplicate value violates a unique constraint", Err: err}
		case pgForeignKeyViolation:
			return &Error{Category: CategoryInvalidReference, Message: "referenced record does not exist or is still referenced", Err: err}
		case pgNotNullViolation:
			return &Error{Category: CategoryValidation, Message: "required column " + pgErr.ColumnName + " is missing", Err: err}
		case pgUndefinedColumn:
			return &Error{Category: CategoryColumnMissing, Message: "database schema is missing a column", Err: err}
		}
	}

	return &Error{Category: CategoryPersistence, Message: "database operation failed", Err: err}
}
