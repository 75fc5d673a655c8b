package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// isForeignKeyViolation reports whether err came from a broken REFERENCES
// constraint on either supported store.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	// mattn/go-sqlite3 reports "FOREIGN KEY constraint failed"
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
