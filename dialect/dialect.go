// Package dialect provides the database abstraction used by the layers
// that execute eager-fetch plans. It defines the driver contract and the
// dialect name constants; package dialect/sql implements the contract on
// top of database/sql.
package dialect

import "context"

// Dialect names for the supported SQL backends.
const (
	// MySQL dialect.
	MySQL = "mysql"
	// SQLite dialect.
	SQLite = "sqlite"
	// Postgres dialect.
	Postgres = "postgres"
)

// ExecQuerier wraps the two basic statement operations.
type ExecQuerier interface {
	// Exec executes a statement that does not return rows. The args
	// value must be a []any; v receives the sql.Result when non-nil.
	Exec(ctx context.Context, query string, args, v any) error

	// Query executes a statement that returns rows. The args value must
	// be a []any; v receives the scanned rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the persistence driver contract.
type Driver interface {
	ExecQuerier

	// Tx starts and returns a new transaction.
	Tx(ctx context.Context) (Tx, error)

	// Close closes the underlying connection.
	Close() error

	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx is a transaction; it supports the statement operations plus commit
// and rollback.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}
