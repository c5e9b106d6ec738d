package testhelper

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// BaseTime is the creation time used by seed helpers.
var BaseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// NewApplication builds a valid, unsaved application.
func NewApplication(t *testing.T, company, date string) *domain.JobApplication {
	t.Helper()

	app, err := domain.NewJobApplication(uuid.New(), domain.JobApplicationInput{
		Company:         company,
		PositionTitle:   "Software Engineer",
		ApplicationDate: date,
	}, BaseTime)
	if err != nil {
		t.Fatalf("testhelper: NewApplication: %v", err)
	}
	return app
}

// SeedApplication inserts a minimal job application row directly and returns
// the entity it represents.
func SeedApplication(t *testing.T, db *sql.DB, company string) *domain.JobApplication {
	t.Helper()

	app := NewApplication(t, company, "2024-02-15")
	statusLog, err := sqlite.JSON(app.StatusLog)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication encode: %v", err)
	}

	_, err = db.ExecContext(context.Background(),
		`INSERT INTO job_applications
		 (id, company, position_title, application_date, source_type, status_log, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, '[]', ?, ?)`,
		app.ID.String(), app.Company, app.PositionTitle, sqlite.Time(app.ApplicationDate),
		string(app.SourceType), statusLog, sqlite.Time(app.CreatedAt), sqlite.Time(app.UpdatedAt),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication insert: %v", err)
	}
	return app
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
