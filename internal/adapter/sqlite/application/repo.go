// Package application implements the job application repository on SQLite.
package application

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

const (
	table  = "job_applications"
	entity = "job_application"
)

var columns = []string{
	"id", "company", "position_title", "application_date", "interest_rating",
	"next_event_date", "job_posting_url", "job_description", "source_type",
	"job_board_id", "status_log", "notes", "created_at", "updated_at",
}

// Repo provides job application persistence backed by SQLite.
type Repo struct {
	db *sql.DB
}

// New creates a new application repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an application by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...)
	app, err := scanApplication(row)
	if err != nil {
		return nil, sqlite.MapError(err, entity, id.String())
	}
	return app, nil
}

// List returns every application ordered by application date, newest first.
// Returns an empty slice when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.JobApplication, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		OrderBy("application_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, "list")
	}
	defer rows.Close()

	apps := []*domain.JobApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, sqlite.MapError(err, entity, "list")
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, entity, "list")
	}
	return apps, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new application.
func (r *Repo) Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	vals, err := values(app)
	if err != nil {
		return nil, domain.NewStorageError("encode "+entity, err)
	}

	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(columns...).
		Values(vals...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, entity, app.ID.String())
	}
	return app.Clone(), nil
}

// Update overwrites every column of an existing application.
func (r *Repo) Update(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	vals, err := values(app)
	if err != nil {
		return nil, domain.NewStorageError("encode "+entity, err)
	}

	set := make(map[string]any, len(columns)-1)
	for i, col := range columns {
		if col == "id" {
			continue
		}
		set[col] = vals[i]
	}

	query, args, err := sqlite.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": app.ID.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, app.ID.String())
	}
	if err := requireRow(res, app.ID); err != nil {
		return nil, err
	}
	return app.Clone(), nil
}

// Delete removes an application. Returns domain.ErrNotFound if it does not
// exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := sqlite.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, entity, id.String())
	}
	return requireRow(res, id)
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func requireRow(res sql.Result, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return sqlite.MapError(err, entity, id.String())
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// values returns column values in the order of columns.
func values(app *domain.JobApplication) ([]any, error) {
	statusLog, err := sqlite.JSON(app.StatusLog)
	if err != nil {
		return nil, err
	}
	notes := app.Notes
	if notes == nil {
		notes = []domain.Note{}
	}
	notesJSON, err := sqlite.JSON(notes)
	if err != nil {
		return nil, err
	}

	return []any{
		app.ID.String(),
		app.Company,
		app.PositionTitle,
		sqlite.Time(app.ApplicationDate),
		sqlite.NullInt(app.InterestRating),
		sqlite.NullTime(app.NextEventDate),
		sqlite.NullString(app.JobPostingURL),
		sqlite.NullString(app.JobDescription),
		string(app.SourceType),
		sqlite.NullUUID(app.JobBoardID),
		statusLog,
		notesJSON,
		sqlite.Time(app.CreatedAt),
		sqlite.Time(app.UpdatedAt),
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(s scanner) (*domain.JobApplication, error) {
	var (
		app                          domain.JobApplication
		id, appDate, source          string
		statusLog, notes             string
		createdAt, updatedAt         string
		rating                       sql.NullInt64
		nextEvent, postingURL, descr sql.NullString
		boardID                      sql.NullString
	)

	if err := s.Scan(
		&id, &app.Company, &app.PositionTitle, &appDate, &rating,
		&nextEvent, &postingURL, &descr, &source,
		&boardID, &statusLog, &notes, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if app.ID, err = uuid.Parse(id); err != nil {
		return nil, domain.NewStorageError("decode "+entity+" id", err)
	}
	if app.ApplicationDate, err = sqlite.ParseTime(appDate); err != nil {
		return nil, domain.NewStorageError("decode "+entity+" application_date", err)
	}
	if app.NextEventDate, err = sqlite.TimePtr(nextEvent); err != nil {
		return nil, domain.NewStorageError("decode "+entity+" next_event_date", err)
	}
	if app.JobBoardID, err = sqlite.UUIDPtr(boardID); err != nil {
		return nil, domain.NewStorageError("decode "+entity+" job_board_id", err)
	}
	if app.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return nil, domain.NewStorageError("decode "+entity+" created_at", err)
	}
	if app.UpdatedAt, err = sqlite.ParseTime(updatedAt); err != nil {
		return nil, domain.NewStorageError("decode "+entity+" updated_at", err)
	}
	if err := sqlite.FromJSON(statusLog, &app.StatusLog); err != nil {
		return nil, domain.NewStorageError("decode "+entity+" status_log", err)
	}
	if err := sqlite.FromJSON(notes, &app.Notes); err != nil {
		return nil, domain.NewStorageError("decode "+entity+" notes", err)
	}
	if app.Notes == nil {
		app.Notes = []domain.Note{}
	}

	app.InterestRating = sqlite.IntPtr(rating)
	app.JobPostingURL = sqlite.StringPtr(postingURL)
	app.JobDescription = sqlite.StringPtr(descr)
	app.SourceType = domain.SourceType(source)
	return &app, nil
}
