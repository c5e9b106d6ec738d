// Package memory keeps every entity in mutex-guarded maps. Values are cloned
// on the way in and on the way out, so callers never share state with the
// store. The jsonfile adapter persists a Store through its commit hook.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

// Snapshot is the full store content in a serializable form.
type Snapshot struct {
	Version         int                      `json:"version"`
	Applications    []*domain.JobApplication `json:"applications"`
	Contacts        []*domain.Contact        `json:"contacts"`
	InterviewStages []*domain.InterviewStage `json:"interviewStages"`
	JobBoards       []*domain.JobBoard       `json:"jobBoards"`
	Pipeline        *domain.PipelineConfig   `json:"pipeline,omitempty"`
}

// SnapshotVersion is written into every Snapshot taken from a Store.
const SnapshotVersion = 1

// CommitHook receives the state a mutation is about to commit. A non-nil
// error aborts the mutation and leaves the store unchanged.
type CommitHook func(Snapshot) error

type state struct {
	apps     map[uuid.UUID]*domain.JobApplication
	contacts map[uuid.UUID]*domain.Contact
	stages   map[uuid.UUID]*domain.InterviewStage
	boards   map[uuid.UUID]*domain.JobBoard
	pipeline *domain.PipelineConfig
}

// Store is the in-memory backing for all repositories.
type Store struct {
	mu    sync.RWMutex
	st    state
	hook  CommitHook
	repos struct {
		apps     *ApplicationRepo
		contacts *ContactRepo
		stages   *StageRepo
		boards   *BoardRepo
		pipeline *PipelineRepo
	}
}

type Option func(*Store)

// WithCommitHook runs h inside the write lock after every mutation.
func WithCommitHook(h CommitHook) Option {
	return func(s *Store) { s.hook = h }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s, _ := FromSnapshot(Snapshot{}, opts...)
	return s
}

// FromSnapshot builds a store preloaded with snap. Duplicate ids or board
// root domains are rejected.
func FromSnapshot(snap Snapshot, opts ...Option) (*Store, error) {
	s := &Store{st: state{
		apps:     make(map[uuid.UUID]*domain.JobApplication, len(snap.Applications)),
		contacts: make(map[uuid.UUID]*domain.Contact, len(snap.Contacts)),
		stages:   make(map[uuid.UUID]*domain.InterviewStage, len(snap.InterviewStages)),
		boards:   make(map[uuid.UUID]*domain.JobBoard, len(snap.JobBoards)),
	}}
	for _, opt := range opts {
		opt(s)
	}

	for _, a := range snap.Applications {
		if _, ok := s.st.apps[a.ID]; ok {
			return nil, fmt.Errorf("%s %s: %w", entityApplication, a.ID, domain.ErrAlreadyExists)
		}
		s.st.apps[a.ID] = a.Clone()
	}
	for _, c := range snap.Contacts {
		if _, ok := s.st.contacts[c.ID]; ok {
			return nil, fmt.Errorf("%s %s: %w", entityContact, c.ID, domain.ErrAlreadyExists)
		}
		s.st.contacts[c.ID] = c.Clone()
	}
	for _, st := range snap.InterviewStages {
		if _, ok := s.st.stages[st.ID]; ok {
			return nil, fmt.Errorf("%s %s: %w", entityStage, st.ID, domain.ErrAlreadyExists)
		}
		s.st.stages[st.ID] = st.Clone()
	}
	for _, b := range snap.JobBoards {
		if err := s.st.checkBoard(b); err != nil {
			return nil, err
		}
		s.st.boards[b.ID] = b.Clone()
	}
	if snap.Pipeline != nil {
		cfg := snap.Pipeline.Clone()
		s.st.pipeline = &cfg
	}

	s.repos.apps = &ApplicationRepo{s: s}
	s.repos.contacts = &ContactRepo{s: s}
	s.repos.stages = &StageRepo{s: s}
	s.repos.boards = &BoardRepo{s: s}
	s.repos.pipeline = &PipelineRepo{s: s}
	return s, nil
}

func (s *Store) Applications() *ApplicationRepo { return s.repos.apps }
func (s *Store) Contacts() *ContactRepo         { return s.repos.contacts }
func (s *Store) Stages() *StageRepo             { return s.repos.stages }
func (s *Store) Boards() *BoardRepo             { return s.repos.boards }
func (s *Store) Pipeline() *PipelineRepo        { return s.repos.pipeline }

// Snapshot returns a deep copy of the current content.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.snapshot()
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.st)
}

// write applies fn to a copy of the state and swaps it in once the commit
// hook accepts it. Entity values are never mutated in place, so copying the
// maps is enough.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.st.copy()
	if err := fn(&next); err != nil {
		return err
	}
	if s.hook != nil {
		if err := s.hook(next.snapshot()); err != nil {
			return domain.NewStorageError("commit", err)
		}
	}
	s.st = next
	return nil
}

func (st *state) copy() state {
	out := state{
		apps:     make(map[uuid.UUID]*domain.JobApplication, len(st.apps)),
		contacts: make(map[uuid.UUID]*domain.Contact, len(st.contacts)),
		stages:   make(map[uuid.UUID]*domain.InterviewStage, len(st.stages)),
		boards:   make(map[uuid.UUID]*domain.JobBoard, len(st.boards)),
		pipeline: st.pipeline,
	}
	for k, v := range st.apps {
		out.apps[k] = v
	}
	for k, v := range st.contacts {
		out.contacts[k] = v
	}
	for k, v := range st.stages {
		out.stages[k] = v
	}
	for k, v := range st.boards {
		out.boards[k] = v
	}
	return out
}

// snapshot lists entities in the same order the repositories do.
func (st *state) snapshot() Snapshot {
	snap := Snapshot{
		Version:         SnapshotVersion,
		Applications:    st.listApplications(),
		Contacts:        st.listContacts(func(*domain.Contact) bool { return true }),
		InterviewStages: st.listStages(func(*domain.InterviewStage) bool { return true }),
		JobBoards:       st.listBoards(),
	}
	if st.pipeline != nil {
		cfg := st.pipeline.Clone()
		snap.Pipeline = &cfg
	}
	return snap
}

// ---------------------------------------------------------------------------
// TxManager
// ---------------------------------------------------------------------------

// TxManager runs fn directly. Every repository call commits on its own;
// there is no rollback.
type TxManager struct{}

func NewTxManager() TxManager { return TxManager{} }

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
