package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Get returns an application by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// List returns applications matching filter, sorted and limited as requested.
func (s *Service) List(ctx context.Context, filter domain.ApplicationFilter) ([]*domain.JobApplication, error) {
	apps, err := s.apps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return filter.Apply(apps, s.now()), nil
}

// ListOverdue returns applications whose next event date has passed.
func (s *Service) ListOverdue(ctx context.Context) ([]*domain.JobApplication, error) {
	return s.List(ctx, domain.ApplicationFilter{Overdue: true})
}
