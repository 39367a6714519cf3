package engine

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite.
const DriverName = "sqlite"

func init() {
	// sqlx only knows "sqlite3" out of the box.
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open(DriverName, dsn) }

// Connect opens a pooled handle to the database identified by dbURL
// (e.g. "sqlite:///var/lib/vrs/index.sqlite") and verifies it with a ping.
// A single attempt is made; the caller owns and must close the returned pool.
func Connect(ctx context.Context, dbURL string, opts ...Option) (*sqlx.DB, error) {
	dsn, err := DSN(dbURL, opts...)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	sqlDB, err := Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("engine: open %s: %w", dbURL, err)
	}
	db := sqlx.NewDb(sqlDB, DriverName)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("engine: connect %s: %w", dbURL, err)
	}
	return db, nil
}
