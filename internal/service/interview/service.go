package interview

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type stageRepo interface {
	Create(ctx context.Context, stage *domain.InterviewStage) (*domain.InterviewStage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error)
	List(ctx context.Context) ([]*domain.InterviewStage, error)
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error)
	Update(ctx context.Context, stage *domain.InterviewStage) (*domain.InterviewStage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)
}

// Service manages interview stages and their questions.
type Service struct {
	stages stageRepo
	apps   applicationRepo
	clock  domain.Clock
	newID  func() uuid.UUID
	log    *slog.Logger
}

type Option func(*Service)

func WithClock(c domain.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a new interview service.
func NewService(log *slog.Logger, stages stageRepo, apps applicationRepo, opts ...Option) *Service {
	s := &Service{
		stages: stages,
		apps:   apps,
		clock:  domain.SystemClock(),
		newID:  uuid.New,
		log:    log.With("service", "interview"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
