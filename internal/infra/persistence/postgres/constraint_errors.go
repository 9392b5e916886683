package postgres

import (
	"strings"

	"profilehub/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL error codes.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// classifyConflict maps a write error onto a *repository.ConflictError when it
// is a unique-constraint violation, deciding once here which column collided.
// Returns nil for any other error.
func classifyConflict(err error) *repository.ConflictError {
	constraint, ok := uniqueViolationConstraint(err)
	if !ok {
		return nil
	}

	lowered := strings.ToLower(constraint)
	switch {
	case strings.Contains(lowered, "email"):
		return &repository.ConflictError{Kind: repository.ConflictEmail, Constraint: constraint}
	case strings.Contains(lowered, "username"):
		return &repository.ConflictError{Kind: repository.ConflictUsername, Constraint: constraint}
	default:
		return &repository.ConflictError{Kind: repository.ConflictUnknown, Constraint: constraint}
	}
}

// uniqueViolationConstraint reports whether err is a unique-constraint
// violation and, if so, the name of the violated constraint.
func uniqueViolationConstraint(err error) (string, bool) {
	// The pgx driver surfaces the violated constraint directly.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return pgErr.ConstraintName, true
		}

		return "", false
	}

	// GORM's translated error carries no constraint name; fall back to the
	// message text, which quotes the constraint on PostgreSQL.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return constraintFromMessage(err.Error()), true
	}

	return "", false
}

func constraintFromMessage(msg string) string {
	// Typical form: ... violates unique constraint "uq_user_profiles_email" ...
	if _, after, found := strings.Cut(msg, `constraint "`); found {
		if name, _, closed := strings.Cut(after, `"`); closed {
			return name
		}
	}

	return msg
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null")
}
