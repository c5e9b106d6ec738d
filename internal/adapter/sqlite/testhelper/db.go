// Package testhelper opens migrated SQLite databases for repository tests.
package testhelper

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/config"
)

// SetupTestDB creates a fresh database file in t.TempDir, applies the goose
// migrations and returns the handle. The handle is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, config.StorageConfig{
		SQLitePath:   filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 4,
		BusyTimeout:  5 * time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := sqlite.Migrate(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("testhelper: migrate: %v", err)
	}

	return db
}
