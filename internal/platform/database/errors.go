// File: internal/platform/database/errors.go
package database

import (
	"errors"
	"strings"

	"careerhub_backend/internal/common"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Postgres error classes the store contract requires us to distinguish.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// Classify translates a raw store error into the shared taxonomy:
// unique_violation -> ErrConflict, foreign_key_violation -> ErrReference,
// check_violation -> ErrConstraint, record-not-found -> ErrNotFound.
// Anything else is treated as transient and left wrapped so the original
// cause stays inspectable.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if apiErr, ok := common.IsAPIError(err); ok {
		return apiErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrConflict
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return common.ErrReference
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return common.ErrConstraint
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return common.ErrConflict.WithDetails(pqErr.Constraint)
		case pgForeignKeyViolation:
			return common.ErrReference.WithDetails(pqErr.Constraint)
		case pgCheckViolation:
			return common.ErrConstraint.WithDetails(pqErr.Constraint)
		}
	}

	// Fallback string matching for drivers that do not surface typed errors
	// (the sqlite driver used in tests among them).
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value violates unique constraint"):
		return common.ErrConflict
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		return common.ErrReference
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "violates check constraint"):
		return common.ErrConstraint
	}

	return common.ErrTransient.WithDetails(err.Error())
}
