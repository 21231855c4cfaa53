package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint-violation codes the repositories translate into domain
// errors (class 23, integrity_constraint_violation).
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsPgDuplicateError reports whether err is a unique-constraint violation,
// e.g. a second skill with the same name inside one category.
func IsPgDuplicateError(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// IsPgNoRowsError reports whether a query matched no rows.
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgForeignKeyError reports whether err is a foreign-key violation.
// Repositories map this to not-found on insert (dangling category id)
// and to a conflict on delete (skills still referencing the category).
func IsPgForeignKeyError(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}
