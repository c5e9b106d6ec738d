// Package jobboard implements the job board repository on SQLite.
package jobboard

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
	table  = "job_boards"
	entity = "job_board"
)

var columns = []string{"id", "name", "root_domain", "domains", "created_at", "updated_at"}

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	b, err := scanBoard(sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, entity, id.String())
	}
	return b, nil
}

// List returns every board ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.JobBoard, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		OrderBy("name COLLATE NOCASE ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, "list")
	}
	defer rows.Close()

	boards := []*domain.JobBoard{}
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, sqlite.MapError(err, entity, "list")
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, entity, "list")
	}
	return boards, nil
}

// Create inserts a board. A duplicate root domain is domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, b *domain.JobBoard) (*domain.JobBoard, error) {
	domains, err := sqlite.JSON(b.Domains)
	if err != nil {
		return nil, domain.NewStorageError("encode "+entity, err)
	}

	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(columns...).
		Values(b.ID.String(), b.Name, b.RootDomain, domains, sqlite.Time(b.CreatedAt), sqlite.Time(b.UpdatedAt)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, entity, b.ID.String())
	}
	return b.Clone(), nil
}

func (r *Repo) Update(ctx context.Context, b *domain.JobBoard) (*domain.JobBoard, error) {
	domains, err := sqlite.JSON(b.Domains)
	if err != nil {
		return nil, domain.NewStorageError("encode "+entity, err)
	}

	query, args, err := sqlite.Builder().
		Update(table).
		Set("name", b.Name).
		Set("root_domain", b.RootDomain).
		Set("domains", domains).
		Set("updated_at", sqlite.Time(b.UpdatedAt)).
		Where(squirrel.Eq{"id": b.ID.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, b.ID.String())
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, sqlite.MapError(err, entity, b.ID.String())
	} else if n == 0 {
		return nil, fmt.Errorf("%s %s: %w", entity, b.ID, domain.ErrNotFound)
	}
	return b.Clone(), nil
}

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
	if n, err := res.RowsAffected(); err != nil {
		return sqlite.MapError(err, entity, id.String())
	} else if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBoard(s scanner) (*domain.JobBoard, error) {
	var (
		b                    domain.JobBoard
		id, domains          string
		createdAt, updatedAt string
	)

	if err := s.Scan(&id, &b.Name, &b.RootDomain, &domains, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if b.ID, err = uuid.Parse(id); err != nil {
		return nil, domain.NewStorageError("decode job_board id", err)
	}
	if b.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return nil, domain.NewStorageError("decode job_board created_at", err)
	}
	if b.UpdatedAt, err = sqlite.ParseTime(updatedAt); err != nil {
		return nil, domain.NewStorageError("decode job_board updated_at", err)
	}
	if err := sqlite.FromJSON(domains, &b.Domains); err != nil {
		return nil, domain.NewStorageError("decode job_board domains", err)
	}
	if b.Domains == nil {
		b.Domains = []string{}
	}
	return &b, nil
}
