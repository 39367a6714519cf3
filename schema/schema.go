package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/viant/sqlite-vrs/engine"
)

// EnsureSchema creates file_uris and vrs_locations in the provided database
// if they do not already exist. Safe to call on an initialized database.
func EnsureSchema(ctx context.Context, db sqlx.ExecerContext) error {
	if db == nil {
		return fmt.Errorf("schema: db is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := db.ExecContext(ctx, DDL()); err != nil {
		return fmt.Errorf("schema: create tables: %w", err)
	}
	return nil
}

// Setup makes sure the database behind dbURL exists and carries both index
// tables. A failed existence check is treated as "absent"; creating the file
// is then the authoritative step. Setup is idempotent, so re-running it
// repairs a database that was created but never received its tables.
func Setup(ctx context.Context, dbURL string, opts ...engine.Option) error {
	// Reject bad options before anything touches the filesystem.
	if _, err := engine.DSN(dbURL, opts...); err != nil {
		return err
	}
	exists, err := engine.Exists(dbURL)
	if err != nil {
		slog.Debug("database existence check failed", "url", dbURL, "error", err)
		exists = false
	}
	if !exists {
		slog.Info("creating database", "url", dbURL)
		if err := engine.Create(dbURL); err != nil {
			return err
		}
		slog.Info("created database", "url", dbURL)
	} else {
		slog.Info("database exists", "url", dbURL)
	}

	db, err := engine.Connect(ctx, dbURL, opts...)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}
	slog.Info("created tables", "url", dbURL, "tables", Tables())
	return nil
}
