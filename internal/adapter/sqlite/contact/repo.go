// Package contact implements the contact repository on SQLite.
package contact

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
	table  = "contacts"
	entity = "contact"
)

var columns = []string{
	"id", "job_application_id", "name", "email", "linkedin", "role", "channel",
	"outreach_date", "response_received", "notes", "created_at", "updated_at",
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

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	c, err := scanContact(sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, sqlite.MapError(err, entity, id.String())
	}
	return c, nil
}

// List returns every contact ordered by creation time.
func (r *Repo) List(ctx context.Context) ([]*domain.Contact, error) {
	return r.list(ctx, sqlite.Builder().Select(columns...).From(table), "list")
}

// ListByApplication returns the contacts referencing appID.
func (r *Repo) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error) {
	q := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"job_application_id": appID.String()})
	return r.list(ctx, q, appID.String())
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder, id string) ([]*domain.Contact, error) {
	query, args, err := q.OrderBy("created_at ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := sqlite.QuerierFromCtx(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, id)
	}
	defer rows.Close()

	contacts := []*domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, sqlite.MapError(err, entity, id)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlite.MapError(err, entity, id)
	}
	return contacts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

func (r *Repo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(columns...).
		Values(values(c)...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, entity, c.ID.String())
	}
	return c.Clone(), nil
}

func (r *Repo) Update(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	vals := values(c)
	set := make(map[string]any, len(columns)-1)
	for i, col := range columns[1:] {
		set[col] = vals[i+1]
	}

	query, args, err := sqlite.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": c.ID.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, entity, c.ID.String())
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, sqlite.MapError(err, entity, c.ID.String())
	} else if n == 0 {
		return nil, fmt.Errorf("%s %s: %w", entity, c.ID, domain.ErrNotFound)
	}
	return c.Clone(), nil
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

// DeleteByApplication removes every contact of appID and returns how many
// were deleted.
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

func values(c *domain.Contact) []any {
	return []any{
		c.ID.String(),
		c.JobApplicationID.String(),
		c.Name,
		sqlite.NullString(c.Email),
		sqlite.NullString(c.LinkedIn),
		sqlite.NullString(c.Role),
		string(c.Channel),
		sqlite.NullTime(c.OutreachDate),
		c.ResponseReceived,
		sqlite.NullString(c.Notes),
		sqlite.Time(c.CreatedAt),
		sqlite.Time(c.UpdatedAt),
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*domain.Contact, error) {
	var (
		c                           domain.Contact
		id, appID, channel          string
		createdAt, updatedAt        string
		email, linkedIn, role, note sql.NullString
		outreach                    sql.NullString
	)

	if err := s.Scan(
		&id, &appID, &c.Name, &email, &linkedIn, &role, &channel,
		&outreach, &c.ResponseReceived, &note, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if c.ID, err = uuid.Parse(id); err != nil {
		return nil, domain.NewStorageError("decode contact id", err)
	}
	if c.JobApplicationID, err = uuid.Parse(appID); err != nil {
		return nil, domain.NewStorageError("decode contact job_application_id", err)
	}
	if c.OutreachDate, err = sqlite.TimePtr(outreach); err != nil {
		return nil, domain.NewStorageError("decode contact outreach_date", err)
	}
	if c.CreatedAt, err = sqlite.ParseTime(createdAt); err != nil {
		return nil, domain.NewStorageError("decode contact created_at", err)
	}
	if c.UpdatedAt, err = sqlite.ParseTime(updatedAt); err != nil {
		return nil, domain.NewStorageError("decode contact updated_at", err)
	}

	c.Email = sqlite.StringPtr(email)
	c.LinkedIn = sqlite.StringPtr(linkedIn)
	c.Role = sqlite.StringPtr(role)
	c.Notes = sqlite.StringPtr(note)
	c.Channel = domain.ContactChannel(channel)
	return &c, nil
}
