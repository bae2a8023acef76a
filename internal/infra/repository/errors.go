package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNumericOutOfRange   = "22003"
)

// translate maps driver failures onto the caller-visible error kinds.
func translate(resource string, id any, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperr.Conflict(resource + " already exists (" + pgErr.ConstraintName + ")")
		case pgForeignKeyViolation:
			return apperr.Invalid("non_field_errors", "referenced object does not exist.")
		case pgNumericOutOfRange:
			field := pgErr.ColumnName
			if field == "" {
				field = "non_field_errors"
			}
			return apperr.Invalid(field, "Ensure this value fits the column's numeric range.")
		}
	}

	return err
}
