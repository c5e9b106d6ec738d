// Package interview implements the interview stage repository on SQLite.
package interview

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
	table  = "interview_stages"
	entity = "interview_stage"
)

var columns = []string{
	"id", "job_application_id", "round", "interview_type", "is_final_round",
	"scheduled_date", "completed_date", "notes", "questions", "created_at", "updated_at",
}

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	s, err := scanStage(sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, entity, id.String())
	}
	return s, nil
}

func (r *Repo) List(ctx context.Context) ([]*domain.InterviewStage, error) {
	return r.list(ctx, sqlite.Builder().Select(columns...).From(table), "list")
}

// ListByApplication returns appID's stages ordered by round.
func (r *Repo) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error) {
	q := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"job_application_id": appID.String()})
	return r.list(ctx, q, appID.String())
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder, id string) ([]*domain.InterviewStage, error) {
	query, args, err := q.OrderBy("round ASC", "created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, id)
	}
	defer rows.Close()

	stages := []*domain.InterviewStage{}
	for rows.Next() {
		s, err := scanStage(rows)
		if err != nil {
			return nil, sqlite.MapError(err, entity, id)
		}
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, entity, id)
	}
	return stages, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

func (r *Repo) Create(ctx context.Context, s *domain.InterviewStage) (*domain.InterviewStage, error) {
	vals, err := values(s)
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
		return nil, sqlite.MapError(err, entity, s.ID.String())
	}
	return s.Clone(), nil
}

func (r *Repo) Update(ctx context.Context, s *domain.InterviewStage) (*domain.InterviewStage, error) {
	vals, err := values(s)
	if err != nil {
		return nil, domain.NewStorageError("encode "+entity, err)
	}
	set := make(map[string]any, len(columns)-1)
	for i, col := range columns[1:] {
		set[col] = vals[i+1]
	}

	query, args, err := sqlite.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": s.ID.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, s.ID.String())
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, sqlite.MapError(err, entity, s.ID.String())
	} else if n == 0 {
		return nil, fmt.Errorf("%s %s: %w", entity, s.ID, domain.ErrNotFound)
	}
	return s.Clone(), nil
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.delete(ctx, squirrel.Eq{"id": id.String()}, id.String())
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByApplication removes every stage of appID and returns the count.
func (r *Repo) DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error) {
	return r.delete(ctx, squirrel.Eq{"job_application_id": appID.String()}, appID.String())
}

func (r *Repo) delete(ctx context.Context, where squirrel.Eq, id string) (int, error) {
	query, args, err := sqlite.Builder().Delete(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, entity, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, sqlite.MapError(err, entity, id)
	}
	return int(n), nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func values(s *domain.InterviewStage) ([]any, error) {
	questions := s.Questions
	if questions == nil {
		questions = []domain.Question{}
	}
	qJSON, err := sqlite.JSON(questions)
	if err != nil {
		return nil, err
	}

	return []any{
		s.ID.String(),
		s.JobApplicationID.String(),
		s.Round,
		string(s.InterviewType),
		s.IsFinalRound,
		sqlite.NullTime(s.ScheduledDate),
		sqlite.NullTime(s.CompletedDate),
		sqlite.NullString(s.Notes),
		qJSON,
		sqlite.Time(s.CreatedAt),
		sqlite.Time(s.UpdatedAt),
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStage(sc scanner) (*domain.InterviewStage, error) {
	var (
		s                          domain.InterviewStage
		id, appID, kind            string
		questions                  string
		createdAt, updatedAt       string
		scheduled, completed, note sql.NullString
	)

	if err := sc.Scan(
		&id, &appID, &s.Round, &kind, &s.IsFinalRound,
		&scheduled, &completed, &note, &questions, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if s.ID, err = uuid.Parse(id); err != nil {
		return nil, domain.NewStorageError("decode interview_stage id", err)
	}
	if s.JobApplicationID, err = uuid.Parse(appID); err != nil {
		return nil, domain.NewStorageError("decode interview_stage job_application_id", err)
	}
	if s.ScheduledDate, err = sqlite.TimePtr(scheduled); err != nil {
		return nil, domain.NewStorageError("decode interview_stage scheduled_date", err)
	}
	if s.CompletedDate, err = sqlite.TimePtr(completed); err != nil {
		return nil, domain.NewStorageError("decode interview_stage completed_date", err)
	}
	if s.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return nil, domain.NewStorageError("decode interview_stage created_at", err)
	}
	if s.UpdatedAt, err = sqlite.ParseTime(updatedAt); err != nil {
		return nil, domain.NewStorageError("decode interview_stage updated_at", err)
	}
	if err := sqlite.FromJSON(questions, &s.Questions); err != nil {
		return nil, domain.NewStorageError("decode interview_stage questions", err)
	}
	if s.Questions == nil {
		s.Questions = []domain.Question{}
	}

	s.InterviewType = domain.InterviewType(kind)
	s.Notes = sqlite.StringPtr(note)
	return &s, nil
}
