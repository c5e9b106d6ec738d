package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type applicationRepo interface {
	Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)
	List(ctx context.Context) ([]*domain.JobApplication, error)
	Update(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactRepo interface {
	DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error)
}

type interviewRepo interface {
	DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error)
}

type jobBoardRepo interface {
	List(ctx context.Context) ([]*domain.JobBoard, error)
}

type pipelineRepo interface {
	Get(ctx context.Context) (domain.PipelineConfig, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides job application use cases.
type Service struct {
	apps       applicationRepo
	contacts   contactRepo
	interviews interviewRepo
	boards     jobBoardRepo
	pipeline   pipelineRepo
	tx         txManager
	clock      domain.Clock
	newID      func() uuid.UUID
	log        *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the wall clock.
func WithClock(c domain.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithIDGenerator overrides uuid.New.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a new application service.
func NewService(
	log *slog.Logger,
	apps applicationRepo,
	contacts contactRepo,
	interviews interviewRepo,
	boards jobBoardRepo,
	pipeline pipelineRepo,
	tx txManager,
	opts ...Option,
) *Service {
	s := &Service{
		apps:       apps,
		contacts:   contacts,
		interviews: interviews,
		boards:     boards,
		pipeline:   pipeline,
		tx:         tx,
		clock:      domain.SystemClock(),
		newID:      uuid.New,
		log:        log.With("service", "application"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) now() time.Time { return s.clock.Now() }
