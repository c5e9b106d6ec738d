// Package pipeline stores the single pipeline configuration row on SQLite.
package pipeline

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

const (
	table  = "pipeline_config"
	entity = "pipeline_config"
	rowID  = 1
)

type Repo struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Get returns the saved config. Returns domain.ErrNotFound before the first
// Save.
func (r *Repo) Get(ctx context.Context) (domain.PipelineConfig, error) {
	query, args, err := sqlite.Builder().
		Select("active", "inactive").
		From(table).
		Where(squirrel.Eq{"id": rowID}).
		ToSql()
	if err != nil {
		return domain.PipelineConfig{}, fmt.Errorf("build query: %w", err)
	}

	var active, inactive string
	err = sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&active, &inactive)
	if err != nil {
		return domain.PipelineConfig{}, sqlite.MapError(err, entity, "current")
	}

	var cfg domain.PipelineConfig
	if err := sqlite.FromJSON(active, &cfg.Active); err != nil {
		return domain.PipelineConfig{}, domain.NewStorageError("decode pipeline_config active", err)
	}
	if err := sqlite.FromJSON(inactive, &cfg.Inactive); err != nil {
		return domain.PipelineConfig{}, domain.NewStorageError("decode pipeline_config inactive", err)
	}
	return cfg, nil
}

// Save replaces the stored config.
func (r *Repo) Save(ctx context.Context, cfg domain.PipelineConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	active, err := sqlite.JSON(cfg.Active)
	if err != nil {
		return domain.NewStorageError("encode pipeline_config", err)
	}
	inactive, err := sqlite.JSON(cfg.Inactive)
	if err != nil {
		return domain.NewStorageError("encode pipeline_config", err)
	}

	query, args, err := sqlite.Builder().
		Insert(table).
		Columns("id", "active", "inactive", "updated_at").
		Values(rowID, active, inactive, sqlite.Time(r.now())).
		Suffix("ON CONFLICT (id) DO UPDATE SET active = excluded.active, inactive = excluded.inactive, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, entity, "current")
	}
	return nil
}
