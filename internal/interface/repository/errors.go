package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNoTable             = errors.New("table name is empty")
	ErrNoColumns           = errors.New("column list is empty")
	ErrRowWidth            = errors.New("row width does not match column count")
	ErrConstraintViolation = errors.New("integrity constraint violation")
)

// integrityViolationClass is the SQLSTATE class for constraint failures
const integrityViolationClass = "23"

// classifyError wraps a store error with the table name and, for integrity
// constraint failures, ErrConstraintViolation.
func classifyError(table string, err error) error {
	if isConstraintViolation(err) {
		return fmt.Errorf("bulk insert into %s: %w: %w", table, ErrConstraintViolation, err)
	}
	return fmt.Errorf("bulk insert into %s: %w", table, err)
}

func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, integrityViolationClass)
	}

	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey)
}
