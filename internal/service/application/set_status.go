package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// SetStatus appends a new status to the application's log. The label must be
// configured in the pipeline under the given (or inferred) category.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) (*domain.JobApplication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.pipelineConfig(ctx)
	if err != nil {
		return nil, err
	}

	label := domain.NormalizeLabel(input.Label)
	category := domain.StatusCategory(strings.TrimSpace(input.Category))
	if category == "" {
		c, ok := cfg.CategoryOf(label)
		if !ok {
			return nil, domain.NewValidationError("status.label", fmt.Sprintf("unknown label %q", label))
		}
		category = c
	}

	status := domain.ApplicationStatus{Category: category, Label: label, Note: input.Note}
	if !cfg.Contains(status) {
		return nil, domain.NewValidationError("status.label",
			fmt.Sprintf("label %q is not configured for %s", label, category))
	}

	app, err := s.apps.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	prev, _ := app.CurrentStatus()
	if err := app.NewStatus(status, s.now()); err != nil {
		return nil, err
	}

	updated, err := s.apps.Update(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.log.InfoContext(ctx, "application status changed",
		slog.String("application_id", updated.ID.String()),
		slog.String("from", prev.Label),
		slog.String("to", label),
		slog.String("category", category.String()),
	)

	return updated, nil
}

// pipelineConfig loads the stored config, falling back to the default when
// none was saved yet.
func (s *Service) pipelineConfig(ctx context.Context) (domain.PipelineConfig, error) {
	cfg, err := s.pipeline.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultPipelineConfig(), nil
	}
	if err != nil {
		return domain.PipelineConfig{}, fmt.Errorf("get pipeline config: %w", err)
	}
	return cfg, nil
}
