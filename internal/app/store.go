package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/jsonfile"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/memory"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite"
	sqliteapp "github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite/application"
	sqlitecontact "github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite/contact"
	sqliteinterview "github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite/interview"
	sqliteboard "github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite/jobboard"
	sqlitepipeline "github.com/graffhyrum/jobAppTracker-sub000/internal/adapter/sqlite/pipeline"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/config"
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
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error)
	Update(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error)
}

type stageRepo interface {
	Create(ctx context.Context, s *domain.InterviewStage) (*domain.InterviewStage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InterviewStage, error)
	List(ctx context.Context) ([]*domain.InterviewStage, error)
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error)
	Update(ctx context.Context, s *domain.InterviewStage) (*domain.InterviewStage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByApplication(ctx context.Context, appID uuid.UUID) (int, error)
}

type boardRepo interface {
	Create(ctx context.Context, b *domain.JobBoard) (*domain.JobBoard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobBoard, error)
	List(ctx context.Context) ([]*domain.JobBoard, error)
	Update(ctx context.Context, b *domain.JobBoard) (*domain.JobBoard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type pipelineRepo interface {
	Get(ctx context.Context) (domain.PipelineConfig, error)
	Save(ctx context.Context, cfg domain.PipelineConfig) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the storage backend selected by configuration. It is built once
// at startup and handed to every service.
type Store struct {
	Driver       string
	Applications applicationRepo
	Contacts     contactRepo
	Stages       stageRepo
	Boards       boardRepo
	Pipeline     pipelineRepo
	Tx           txManager

	ping  func(ctx context.Context) error
	close func() error
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close releases the backend.
func (s *Store) Close() error { return s.close() }

// OpenStore opens the backend named by cfg.Driver. The SQLite schema is
// migrated first when cfg.AutoMigrate is set.
func OpenStore(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	case config.DriverJSON:
		mem, err := jsonfile.Open(cfg.JSONPath, log)
		if err != nil {
			return nil, fmt.Errorf("open json store: %w", err)
		}
		return memoryStore(config.DriverJSON, mem), nil
	case config.DriverMemory:
		return memoryStore(config.DriverMemory, memory.New()), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func openSQLite(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (*Store, error) {
	db, err := sqlite.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := sqlite.Migrate(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return sqliteStore(db), nil
}

func sqliteStore(db *sql.DB) *Store {
	return &Store{
		Driver:       config.DriverSQLite,
		Applications: sqliteapp.New(db),
		Contacts:     sqlitecontact.New(db),
		Stages:       sqliteinterview.New(db),
		Boards:       sqliteboard.New(db),
		Pipeline:     sqlitepipeline.New(db),
		Tx:           sqlite.NewTxManager(db),
		ping:         db.PingContext,
		close:        db.Close,
	}
}

func memoryStore(driver string, mem *memory.Store) *Store {
	return &Store{
		Driver:       driver,
		Applications: mem.Applications(),
		Contacts:     mem.Contacts(),
		Stages:       mem.Stages(),
		Boards:       mem.Boards(),
		Pipeline:     mem.Pipeline(),
		Tx:           memory.NewTxManager(),
		ping:         func(ctx context.Context) error { return ctx.Err() },
		close:        func() error { return nil },
	}
}
