package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/config"
	analyticssvc "github.com/graffhyrum/jobAppTracker-sub000/internal/service/analytics"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/application"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/contact"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/interview"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/jobboard"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/pipeline"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/transport/middleware"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/transport/rest"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/transport/web"
)

// Services holds one instance of every use-case service.
type Services struct {
	Applications *application.Service
	Contacts     *contact.Service
	Interviews   *interview.Service
	JobBoards    *jobboard.Service
	Pipeline     *pipeline.Service
	Analytics    *analyticssvc.Service
}

// NewServices builds the services over store.
func NewServices(store *Store, log *slog.Logger) Services {
	return Services{
		Applications: application.NewService(log,
			store.Applications, store.Contacts, store.Stages, store.Boards, store.Pipeline, store.Tx),
		Contacts:   contact.NewService(log, store.Contacts, store.Applications),
		Interviews: interview.NewService(log, store.Stages, store.Applications),
		JobBoards:  jobboard.NewService(log, store.Boards),
		Pipeline:   pipeline.NewService(log, store.Pipeline),
		Analytics:  analyticssvc.NewService(log, store.Applications, store.Contacts, store.Stages),
	}
}

// App is the wired HTTP application.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *Store
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New opens storage and builds the HTTP handler tree. Close releases both.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := OpenStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, log: log, store: store}
	if err := a.buildHandler(NewServices(store, log)); err != nil {
		_ = store.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) buildHandler(svc Services) error {
	mux := http.NewServeMux()

	rest.Handlers{
		Health:       rest.NewHealthHandler(a.store, a.store.Driver, BuildVersion(), a.log),
		Applications: rest.NewApplicationHandler(svc.Applications, a.log),
		Contacts:     rest.NewContactHandler(svc.Contacts, a.log),
		Interviews:   rest.NewInterviewHandler(svc.Interviews, a.log),
		JobBoards:    rest.NewJobBoardHandler(svc.JobBoards, a.log),
		Pipeline:     rest.NewPipelineHandler(svc.Pipeline, a.log),
		Analytics:    rest.NewAnalyticsHandler(svc.Analytics, a.log),
	}.Register(mux)

	pages, err := web.NewHandler(svc.Applications, svc.Pipeline, svc.Analytics, a.log)
	if err != nil {
		return fmt.Errorf("web handler: %w", err)
	}
	pages.Register(mux)

	var inner http.Handler = mux
	if a.cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		mux.Handle("GET "+a.cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		inner = middleware.NewMetrics(a.cfg.Metrics.Namespace, reg).Middleware()(mux)
	}

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(a.log),
		middleware.Logger(a.log),
		middleware.CORS(a.cfg.CORS),
	}
	if n := a.cfg.RateLimit.WritesPerMinute; n > 0 {
		a.limiter = middleware.NewRateLimiter(a.cfg.RateLimit.CleanupInterval)
		mws = append(mws, middleware.OnlyWrites(a.limiter.Limit(n)))
	}

	a.handler = middleware.Chain(mws...)(inner)
	return nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close stops background work and closes storage.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return a.store.Close()
}

// Serve listens on the configured address until ctx is canceled, then shuts
// the server down within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run is the application entry point. It loads configuration, initializes
// the logger, opens storage and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			logger.Error("close application", slog.String("error", cerr.Error()))
		}
	}()

	return a.Serve(ctx)
}
