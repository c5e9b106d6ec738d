package contact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type contactRepo interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error)
	Update(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)
}

// Service provides contact management operations.
type Service struct {
	contacts contactRepo
	apps     applicationRepo
	clock    domain.Clock
	newID    func() uuid.UUID
	log      *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

func WithClock(c domain.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a new contact service.
func NewService(log *slog.Logger, contacts contactRepo, apps applicationRepo, opts ...Option) *Service {
	s := &Service{
		contacts: contacts,
		apps:     apps,
		clock:    domain.SystemClock(),
		newID:    uuid.New,
		log:      log.With("service", "contact"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
