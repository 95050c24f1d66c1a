package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Constraint names stores match against when translating violations.
const (
	ConstraintClassRegistry = "classes_registry_key"
	ConstraintClassTriple   = "classes_year_number_level_key"
	ConstraintStudentReg    = "students_registry_key"
	ConstraintStudentTaxID  = "students_tax_id_key"
	ConstraintMembershipPK  = "class_students_pkey"
)

// pgError normalizes pgx and lib/pq errors to (sqlstate, constraint).
func pgError(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

// IsUniqueViolation reports a unique constraint violation.
func IsUniqueViolation(err error) bool {
	code, _, ok := pgError(err)
	return ok && code == codeUniqueViolation
}

// IsForeignKeyViolation reports a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	code, _, ok := pgError(err)
	return ok && code == codeForeignKeyViolation
}

// ViolatedConstraint returns the constraint name of a constraint violation.
func ViolatedConstraint(err error) string {
	_, constraint, _ := pgError(err)
	return constraint
}
