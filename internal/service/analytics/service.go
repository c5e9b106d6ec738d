package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/analytics"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type applicationRepo interface {
	List(ctx context.Context) ([]*domain.JobApplication, error)
}

type contactRepo interface {
	List(ctx context.Context) ([]*domain.Contact, error)
}

type stageRepo interface {
	List(ctx context.Context) ([]*domain.InterviewStage, error)
}

// Service computes reports over all stored data.
type Service struct {
	apps     applicationRepo
	contacts contactRepo
	stages   stageRepo
	clock    domain.Clock
	log      *slog.Logger
}

type Option func(*Service)

func WithClock(c domain.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// NewService creates a new analytics service.
func NewService(log *slog.Logger, apps applicationRepo, contacts contactRepo, stages stageRepo, opts ...Option) *Service {
	s := &Service{
		apps:     apps,
		contacts: contacts,
		stages:   stages,
		clock:    domain.SystemClock(),
		log:      log.With("service", "analytics"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ComputeAll loads every application, contact and stage concurrently and
// builds the combined report. A nil r spans all application dates.
func (s *Service) ComputeAll(ctx context.Context, r *analytics.DateRange) (analytics.CombinedAnalytics, error) {
	if r != nil && !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return analytics.CombinedAnalytics{}, domain.NewValidationError("range", "end must not be before start")
	}

	var (
		apps     []*domain.JobApplication
		contacts []*domain.Contact
		stages   []*domain.InterviewStage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if apps, err = s.apps.List(gctx); err != nil {
			return fmt.Errorf("list applications: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if contacts, err = s.contacts.List(gctx); err != nil {
			return fmt.Errorf("list contacts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if stages, err = s.stages.List(gctx); err != nil {
			return fmt.Errorf("list interview stages: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return analytics.CombinedAnalytics{}, err
	}

	start := time.Now()
	out := analytics.Compute(apps, contacts, stages, r, s.clock.Now())

	s.log.DebugContext(ctx, "analytics computed",
		slog.Int("applications", out.Applications.Summary.TotalApplications),
		slog.Int("contacts", out.Contacts.Summary.TotalContacts),
		slog.Int("stages", out.Interviews.Summary.TotalStages),
		slog.Duration("took", time.Since(start)),
	)
	return out, nil
}
