package interview

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Create stores a new stage for an existing application.
func (s *Service) Create(ctx context.Context, in domain.InterviewStageInput) (*domain.InterviewStage, error) {
	stage, err := domain.NewInterviewStage(s.newID(), in, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if _, err := s.apps.GetByID(ctx, in.JobApplicationID); err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	created, err := s.stages.Create(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("create interview stage: %w", err)
	}

	s.log.InfoContext(ctx, "interview stage created",
		slog.String("stage_id", created.ID.String()),
		slog.String("application_id", created.JobApplicationID.String()),
		slog.Int("round", created.Round),
	)

	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error) {
	stage, err := s.stages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get interview stage: %w", err)
	}
	return stage, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.InterviewStage, error) {
	stages, err := s.stages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interview stages: %w", err)
	}
	return stages, nil
}

// ListByApplication returns an application's stages ordered by round, then
// creation time.
func (s *Service) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error) {
	stages, err := s.stages.ListByApplication(ctx, appID)
	if err != nil {
		return nil, fmt.Errorf("list interview stages by application: %w", err)
	}

	sort.SliceStable(stages, func(i, j int) bool {
		if stages[i].Round != stages[j].Round {
			return stages[i].Round < stages[j].Round
		}
		return stages[i].CreatedAt.Before(stages[j].CreatedAt)
	})
	return stages, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.InterviewStagePatch) (*domain.InterviewStage, error) {
	return s.mutate(ctx, id, func(stage *domain.InterviewStage) error {
		return stage.Update(patch, s.clock.Now())
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.stages.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete interview stage: %w", err)
	}

	s.log.InfoContext(ctx, "interview stage deleted", slog.String("stage_id", id.String()))
	return nil
}

// mutate loads a stage, applies fn and saves the result.
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(*domain.InterviewStage) error) (*domain.InterviewStage, error) {
	stage, err := s.stages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get interview stage: %w", err)
	}

	if err := fn(stage); err != nil {
		return nil, err
	}

	updated, err := s.stages.Update(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("update interview stage: %w", err)
	}
	return updated, nil
}
