package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/sims-service/internal/repositories"
)

// PostgreSQL error codes we translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// handleDBError translates store-level failures into the typed errors
// from the repositories package, wrapped with the failing operation.
func handleDBError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", operation, repositories.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", operation, repositories.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", operation, repositories.ErrInvalidReference)
		}
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}
