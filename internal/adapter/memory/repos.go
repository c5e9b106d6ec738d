package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

const (
	entityApplication = "job_application"
	entityContact     = "contact"
	entityStage       = "interview_stage"
	entityBoard       = "job_board"
	entityPipeline    = "pipeline_config"
)

func notFound(entity string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}

func alreadyExists(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
}

// ---------------------------------------------------------------------------
// Ordering, shared with Snapshot
// ---------------------------------------------------------------------------

func (st *state) listApplications() []*domain.JobApplication {
	out := make([]*domain.JobApplication, 0, len(st.apps))
	for _, a := range st.apps {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ApplicationDate.Equal(out[j].ApplicationDate) {
			return out[i].ApplicationDate.After(out[j].ApplicationDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (st *state) listContacts(keep func(*domain.Contact) bool) []*domain.Contact {
	out := make([]*domain.Contact, 0)
	for _, c := range st.contacts {
		if keep(c) {
			out = append(out, c.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (st *state) listStages(keep func(*domain.InterviewStage) bool) []*domain.InterviewStage {
	out := make([]*domain.InterviewStage, 0)
	for _, s := range st.stages {
		if keep(s) {
			out = append(out, s.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (st *state) listBoards() []*domain.JobBoard {
	out := make([]*domain.JobBoard, 0, len(st.boards))
	for _, b := range st.boards {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if a != b {
			return a < b
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// checkBoard enforces unique ids and root domains.
func (st *state) checkBoard(b *domain.JobBoard) error {
	for id, other := range st.boards {
		if id == b.ID {
			return alreadyExists(entityBoard, b.ID.String())
		}
		if other.RootDomain == b.RootDomain {
			return alreadyExists(entityBoard, b.RootDomain)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// ApplicationRepo
// ---------------------------------------------------------------------------

type ApplicationRepo struct{ s *Store }

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobApplication, error) {
	var out *domain.JobApplication
	r.s.read(func(st *state) {
		if a, ok := st.apps[id]; ok {
			out = a.Clone()
		}
	})
	if out == nil {
		return nil, notFound(entityApplication, id)
	}
	return out, nil
}

func (r *ApplicationRepo) List(ctx context.Context) ([]*domain.JobApplication, error) {
	var out []*domain.JobApplication
	r.s.read(func(st *state) { out = st.listApplications() })
	return out, nil
}

func (r *ApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.apps[app.ID]; ok {
			return alreadyExists(entityApplication, app.ID.String())
		}
		st.apps[app.ID] = app.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app.Clone(), nil
}

func (r *ApplicationRepo) Update(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.apps[app.ID]; !ok {
			return notFound(entityApplication, app.ID)
		}
		st.apps[app.ID] = app.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app.Clone(), nil
}

func (r *ApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.apps[id]; !ok {
			return notFound(entityApplication, id)
		}
		delete(st.apps, id)
		return nil
	})
}

// ---------------------------------------------------------------------------
// ContactRepo
// ---------------------------------------------------------------------------

type ContactRepo struct{ s *Store }

func (r *ContactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	var out *domain.Contact
	r.s.read(func(st *state) {
		if c, ok := st.contacts[id]; ok {
			out = c.Clone()
		}
	})
	if out == nil {
		return nil, notFound(entityContact, id)
	}
	return out, nil
}

func (r *ContactRepo) List(ctx context.Context) ([]*domain.Contact, error) {
	var out []*domain.Contact
	r.s.read(func(st *state) {
		out = st.listContacts(func(*domain.Contact) bool { return true })
	})
	return out, nil
}

func (r *ContactRepo) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error) {
	var out []*domain.Contact
	r.s.read(func(st *state) {
		out = st.listContacts(func(c *domain.Contact) bool { return c.JobApplicationID == appID })
	})
	return out, nil
}

func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.contacts[c.ID]; ok {
			return alreadyExists(entityContact, c.ID.String())
		}
		st.contacts[c.ID] = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

func (r *ContactRepo) Update(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.contacts[c.ID]; !ok {
			return notFound(entityContact, c.ID)
		}
		st.contacts[c.ID] = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

func (r *ContactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.contacts[id]; !ok {
			return notFound(entityContact, id)
		}
		delete(st.contacts, id)
		return nil
	})
}

// DeleteByApplication removes every contact of appID and returns the count.
func (r *ContactRepo) DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for id, c := range st.contacts {
			if c.JobApplicationID == appID {
				delete(st.contacts, id)
				n++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// StageRepo
// ---------------------------------------------------------------------------

type StageRepo struct{ s *Store }

func (r *StageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error) {
	var out *domain.InterviewStage
	r.s.read(func(st *state) {
		if s, ok := st.stages[id]; ok {
			out = s.Clone()
		}
	})
	if out == nil {
		return nil, notFound(entityStage, id)
	}
	return out, nil
}

func (r *StageRepo) List(ctx context.Context) ([]*domain.InterviewStage, error) {
	var out []*domain.InterviewStage
	r.s.read(func(st *state) {
		out = st.listStages(func(*domain.InterviewStage) bool { return true })
	})
	return out, nil
}

func (r *StageRepo) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error) {
	var out []*domain.InterviewStage
	r.s.read(func(st *state) {
		out = st.listStages(func(s *domain.InterviewStage) bool { return s.JobApplicationID == appID })
	})
	return out, nil
}

func (r *StageRepo) Create(ctx context.Context, s *domain.InterviewStage) (*domain.InterviewStage, error) {
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.stages[s.ID]; ok {
			return alreadyExists(entityStage, s.ID.String())
		}
		st.stages[s.ID] = s.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (r *StageRepo) Update(ctx context.Context, s *domain.InterviewStage) (*domain.InterviewStage, error) {
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.stages[s.ID]; !ok {
			return notFound(entityStage, s.ID)
		}
		st.stages[s.ID] = s.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (r *StageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.stages[id]; !ok {
			return notFound(entityStage, id)
		}
		delete(st.stages, id)
		return nil
	})
}

func (r *StageRepo) DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for id, s := range st.stages {
			if s.JobApplicationID == appID {
				delete(st.stages, id)
				n++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// BoardRepo
// ---------------------------------------------------------------------------

type BoardRepo struct{ s *Store }

func (r *BoardRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error) {
	var out *domain.JobBoard
	r.s.read(func(st *state) {
		if b, ok := st.boards[id]; ok {
			out = b.Clone()
		}
	})
	if out == nil {
		return nil, notFound(entityBoard, id)
	}
	return out, nil
}

// List orders boards by name, ignoring case.
func (r *BoardRepo) List(ctx context.Context) ([]*domain.JobBoard, error) {
	var out []*domain.JobBoard
	r.s.read(func(st *state) { out = st.listBoards() })
	return out, nil
}

func (r *BoardRepo) Create(ctx context.Context, b *domain.JobBoard) (*domain.JobBoard, error) {
	err := r.s.write(ctx, func(st *state) error {
		if err := st.checkBoard(b); err != nil {
			return err
		}
		st.boards[b.ID] = b.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

func (r *BoardRepo) Update(ctx context.Context, b *domain.JobBoard) (*domain.JobBoard, error) {
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.boards[b.ID]; !ok {
			return notFound(entityBoard, b.ID)
		}
		for id, other := range st.boards {
			if id != b.ID && other.RootDomain == b.RootDomain {
				return alreadyExists(entityBoard, b.RootDomain)
			}
		}
		st.boards[b.ID] = b.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b.Clone(), nil
}

func (r *BoardRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.boards[id]; !ok {
			return notFound(entityBoard, id)
		}
		delete(st.boards, id)
		return nil
	})
}

// ---------------------------------------------------------------------------
// PipelineRepo
// ---------------------------------------------------------------------------

type PipelineRepo struct{ s *Store }

// Get returns domain.ErrNotFound before the first Save.
func (r *PipelineRepo) Get(ctx context.Context) (domain.PipelineConfig, error) {
	var (
		cfg domain.PipelineConfig
		ok  bool
	)
	r.s.read(func(st *state) {
		if st.pipeline != nil {
			cfg, ok = st.pipeline.Clone(), true
		}
	})
	if !ok {
		return domain.PipelineConfig{}, fmt.Errorf("%s current: %w", entityPipeline, domain.ErrNotFound)
	}
	return cfg, nil
}

func (r *PipelineRepo) Save(ctx context.Context, cfg domain.PipelineConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return r.s.write(ctx, func(st *state) error {
		saved := cfg.Clone()
		st.pipeline = &saved
		return nil
	})
}
