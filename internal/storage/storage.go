// Package storage opens the local sqlite database and brings its schema up
// to date.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/userdesk/userdesk/internal/storage/migrations"
)

// Open opens (creating if necessary) the sqlite database at dsn and applies
// pending migrations. Safe to call on every start: goose tracks applied
// versions in its own table.
//
// The handle is limited to a single connection. sqlite serializes writers
// internally, and one long-lived connection avoids SQLITE_BUSY churn from
// opening the file per operation.
//
// This is the only place where an engine failure surfaces to the caller;
// everything after a successful Open degrades faults to in-band results.
func Open(ctx context.Context, dsn string, busyTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		fmt.Sprintf(`PRAGMA busy_timeout = %d`, busyTimeout.Milliseconds()),
		`PRAGMA foreign_keys = ON`,
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply pragmas: %w", err)
		}
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
