package jobboard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type boardRepo interface {
	Create(ctx context.Context, board *domain.JobBoard) (*domain.JobBoard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error)
	List(ctx context.Context) ([]*domain.JobBoard, error)
	Update(ctx context.Context, board *domain.JobBoard) (*domain.JobBoard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service manages job boards and resolves posting URLs to them.
type Service struct {
	boards boardRepo
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

// NewService creates a new job board service.
func NewService(log *slog.Logger, boards boardRepo, opts ...Option) *Service {
	s := &Service{
		boards: boards,
		clock:  domain.SystemClock(),
		newID:  uuid.New,
		log:    log.With("service", "jobboard"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
