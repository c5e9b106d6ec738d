package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Update applies a partial update. The status log cannot be changed here;
// use SetStatus.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.JobApplication, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	app, err := s.apps.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	if err := app.Update(input.Patch, s.now()); err != nil {
		return nil, err
	}

	updated, err := s.apps.Update(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.log.InfoContext(ctx, "application updated",
		slog.String("application_id", updated.ID.String()),
	)

	return updated, nil
}
