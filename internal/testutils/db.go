package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/campusqa/campusqa-api/internal/platform/postgres"
)

var migrateOnce sync.Once
var migrateErr error

// IsIntegrationTestEnvironment reports whether a test database is
// available via the DATABASE_URL environment variable.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// GetTestDB opens a connection to the test database named by DATABASE_URL
// and ensures the schema is migrated. The caller owns the returned handle
// and should close it when the test finishes.
func GetTestDB() (*sql.DB, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping test database: %w", err)
	}

	migrateOnce.Do(func() {
		migrateErr = postgres.MigrateUp(ctx, db)
	})
	if migrateErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate test database: %w", migrateErr)
	}

	return db, nil
}

// GetTestDBWithT is like GetTestDB but fails the test on error and
// registers cleanup of the connection.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	db, err := GetTestDB()
	if err != nil {
		t.Fatalf("failed to get test database: %v", err)
	}
	t.Cleanup(func() { AssertCloseNoError(t, db) })

	return db
}

// WithTx runs fn inside a transaction that is rolled back when fn returns,
// so the test leaves no rows behind.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("failed to begin test transaction: %v", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Errorf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// AssertCloseNoError closes the closer and fails the test if closing errors.
func AssertCloseNoError(t *testing.T, closer io.Closer) {
	t.Helper()

	if err := closer.Close(); err != nil {
		t.Errorf("failed to close resource: %v", err)
	}
}
