package main

import (
	"database/sql"
	"fmt"

	// Drivers selectable via --dialect.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hoistdb/hoist/dialect"
	sqld "github.com/hoistdb/hoist/dialect/sql"
	"github.com/hoistdb/hoist/examples/bookstore"
)

func newDemoCmd() *cobra.Command {
	var (
		dialectName string
		dsn         string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the bookstore walkthrough: eager fetch, CRUD, transactions, conflicts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			switch dialectName {
			case dialect.SQLite, dialect.MySQL, dialect.Postgres:
			default:
				return fmt.Errorf("unsupported dialect %q", dialectName)
			}
			db, err := sql.Open(dialectName, dsn)
			if err != nil {
				return err
			}
			if dialectName == dialect.SQLite {
				// In-memory SQLite needs a single connection, or each
				// pooled connection sees its own empty database.
				db.SetMaxOpenConns(1)
			}
			drv := sqld.OpenDB(dialectName, db)
			defer drv.Close()

			h := bookstore.New(drv, log)
			ctx := cmd.Context()
			if err := h.Setup(ctx); err != nil {
				return err
			}
			if err := h.Seed(ctx); err != nil {
				return err
			}
			return h.RunAll(ctx)
		},
	}
	cmd.Flags().StringVar(&dialectName, "dialect", dialect.SQLite, "database dialect: sqlite, mysql, or postgres")
	cmd.Flags().StringVar(&dsn, "dsn", ":memory:", "database connection string")
	return cmd
}
