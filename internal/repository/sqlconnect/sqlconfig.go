package sqlconnect

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath is a shared in-memory database; its contents last only
// as long as the process.
const DefaultSQLitePath = "file::memory:?cache=shared"

// Postgres driver names accepted by ConnectPostgres.
const (
	DriverPGX   = "pgx"      // jackc/pgx stdlib
	DriverLibPQ = "postgres" // lib/pq
)

// ConnectPostgres opens dsn with driver ("pgx" or "postgres") and pings it.
// An empty driver means pgx.
func ConnectPostgres(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	switch driver {
	case "":
		driver = DriverPGX
	case DriverPGX, DriverLibPQ:
	default:
		return nil, fmt.Errorf("unknown postgres driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

// ConnectSQLite opens path with the pure-Go SQLite driver. A single
// connection keeps in-memory databases alive and serializes writers.
func ConnectSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultSQLitePath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
