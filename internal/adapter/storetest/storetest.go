// Package storetest is the conformance suite every storage adapter runs.
// Adapters expose their repositories through Store and call Run from their
// own tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type ApplicationRepo interface {
	Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error)
	List(ctx context.Context) ([]*domain.JobApplication, error)
	Update(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactRepo interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error)
	Update(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error)
}

type StageRepo interface {
	Create(ctx context.Context, s *domain.InterviewStage) (*domain.InterviewStage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error)
	List(ctx context.Context) ([]*domain.InterviewStage, error)
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error)
	Update(ctx context.Context, s *domain.InterviewStage) (*domain.InterviewStage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error)
}

type BoardRepo interface {
	Create(ctx context.Context, b *domain.JobBoard) (*domain.JobBoard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error)
	List(ctx context.Context) ([]*domain.JobBoard, error)
	Update(ctx context.Context, b *domain.JobBoard) (*domain.JobBoard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PipelineRepo interface {
	Get(ctx context.Context) (domain.PipelineConfig, error)
	Save(ctx context.Context, cfg domain.PipelineConfig) error
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store bundles one adapter's repositories.
type Store struct {
	Applications ApplicationRepo
	Contacts     ContactRepo
	Stages       StageRepo
	Boards       BoardRepo
	Pipeline     PipelineRepo
	Tx           TxManager
}

// Factory returns an empty store. Cleanup is registered on t.
type Factory func(t *testing.T) Store

// Run executes the whole suite. Each subtest gets a fresh store.
func Run(t *testing.T, open Factory) {
	t.Helper()

	t.Run("Applications", func(t *testing.T) { runApplications(t, open) })
	t.Run("Contacts", func(t *testing.T) { runContacts(t, open) })
	t.Run("Stages", func(t *testing.T) { runStages(t, open) })
	t.Run("Boards", func(t *testing.T) { runBoards(t, open) })
	t.Run("Pipeline", func(t *testing.T) { runPipeline(t, open) })
	t.Run("Tx", func(t *testing.T) { runTx(t, open) })
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newApplication(t *testing.T, company, date string, createdAt time.Time) *domain.JobApplication {
	t.Helper()
	rating := 2
	app, err := domain.NewJobApplication(uuid.New(), domain.JobApplicationInput{
		Company:         company,
		PositionTitle:   "Backend Engineer",
		ApplicationDate: date,
		InterestRating:  &rating,
		JobPostingURL:   "https://jobs.example.com/" + company,
		SourceType:      string(domain.SourceCompanyWebsite),
	}, createdAt)
	if err != nil {
		t.Fatalf("storetest: new application: %v", err)
	}
	return app
}

func newContact(t *testing.T, appID uuid.UUID, name string, createdAt time.Time) *domain.Contact {
	t.Helper()
	c, err := domain.NewContact(uuid.New(), domain.ContactInput{
		JobApplicationID: appID,
		Name:             name,
		Email:            name + "@example.com",
		Role:             "Recruiter",
		Channel:          string(domain.ChannelEmail),
		OutreachDate:     "2024-03-02",
	}, createdAt)
	if err != nil {
		t.Fatalf("storetest: new contact: %v", err)
	}
	return c
}

func newStage(t *testing.T, appID uuid.UUID, round int, createdAt time.Time) *domain.InterviewStage {
	t.Helper()
	s, err := domain.NewInterviewStage(uuid.New(), domain.InterviewStageInput{
		JobApplicationID: appID,
		Round:            round,
		InterviewType:    string(domain.InterviewTechnical),
		ScheduledDate:    "2024-03-10",
		Notes:            "bring laptop",
	}, createdAt)
	if err != nil {
		t.Fatalf("storetest: new stage: %v", err)
	}
	return s
}

func newBoard(t *testing.T, name, root string, extra ...string) *domain.JobBoard {
	t.Helper()
	b, err := domain.NewJobBoard(uuid.New(), domain.JobBoardInput{
		Name:       name,
		RootDomain: root,
		Domains:    extra,
	}, baseTime)
	if err != nil {
		t.Fatalf("storetest: new board: %v", err)
	}
	return b
}
