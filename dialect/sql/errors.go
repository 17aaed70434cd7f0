package sql

import (
	"errors"
	"fmt"
	"strings"
)

// VersionMismatchError is returned by optimistic-concurrency updates when
// the stored row version no longer matches the token the caller read.
type VersionMismatchError struct {
	Table   string
	ID      any
	Version int64
}

// Error returns the error string.
func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("dialect/sql: %s row %v changed since version %d was read", e.Table, e.ID, e.Version)
}

// NewVersionMismatchError returns a new VersionMismatchError.
func NewVersionMismatchError(table string, id any, version int64) *VersionMismatchError {
	return &VersionMismatchError{Table: table, ID: id, Version: version}
}

// IsVersionMismatch returns true if the error is a VersionMismatchError.
func IsVersionMismatch(err error) bool {
	if err == nil {
		return false
	}
	var e *VersionMismatchError
	return errors.As(err, &e)
}

// errorCoder is an interface for database errors that provide error codes.
// Implemented by: pq.Error, pgx, mysql.MySQLError, modernc.org/sqlite, etc.
type errorCoder interface {
	Code() string
}

// errorNumberer is an interface for database errors that provide numeric
// error codes. Implemented by mysql.MySQLError.
type errorNumberer interface {
	Number() uint16
}

// sqlStateError is an interface for errors that provide SQLSTATE codes.
// Implemented by: pq.Error, pgx, and some MySQL drivers.
type sqlStateError interface {
	SQLState() string
}

// PostgreSQL SQLSTATE codes for constraint violations (Class 23).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MySQL error numbers for constraint violations.
const (
	mysqlDuplicateEntry   = 1062
	mysqlForeignKeyParent = 1451 // Cannot delete or update a parent row
	mysqlForeignKeyChild  = 1452 // Cannot add or update a child row
)

// IsConstraintError returns true if the error resulted from a database
// constraint violation.
func IsConstraintError(err error) bool {
	return IsUniqueConstraintError(err) || IsForeignKeyConstraintError(err)
}

// IsUniqueConstraintError reports if the error resulted from a DB
// uniqueness constraint violation. e.g. duplicate value in unique index.
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if e, ok := asError[sqlStateError](err); ok && e.SQLState() == pgUniqueViolation {
		return true
	}
	if e, ok := asError[errorCoder](err); ok && e.Code() == pgUniqueViolation {
		return true
	}
	if e, ok := asError[errorNumberer](err); ok && e.Number() == mysqlDuplicateEntry {
		return true
	}
	// Fallback to string matching for drivers that don't implement the
	// interfaces above.
	return containsAny(err.Error(),
		"Error 1062",                 // MySQL
		"violates unique constraint", // Postgres
		"UNIQUE constraint failed",   // SQLite
	)
}

// IsForeignKeyConstraintError reports if the error resulted from a
// database foreign-key constraint violation. e.g. parent row missing.
func IsForeignKeyConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if e, ok := asError[sqlStateError](err); ok && e.SQLState() == pgForeignKeyViolation {
		return true
	}
	if e, ok := asError[errorCoder](err); ok && e.Code() == pgForeignKeyViolation {
		return true
	}
	if e, ok := asError[errorNumberer](err); ok {
		if num := e.Number(); num == mysqlForeignKeyParent || num == mysqlForeignKeyChild {
			return true
		}
	}
	return containsAny(err.Error(),
		"Error 1451",                      // MySQL
		"Error 1452",                      // MySQL
		"violates foreign key constraint", // Postgres
		"FOREIGN KEY constraint failed",   // SQLite
	)
}

// asError attempts to extract an error implementing interface T from the
// error chain.
func asError[T any](err error) (T, bool) {
	var target T
	for err != nil {
		if e, ok := err.(T); ok {
			return e, true
		}
		err = errors.Unwrap(err)
	}
	return target, false
}

// containsAny returns true if s contains any of the substrings.
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
