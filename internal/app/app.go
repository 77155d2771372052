package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"

	"BrightFeed/internal/config"
	"BrightFeed/internal/infrastructure/feed"
	"BrightFeed/internal/infrastructure/scheduler"
	"BrightFeed/internal/infrastructure/sentiment"
	"BrightFeed/internal/infrastructure/storage"
	"BrightFeed/internal/logging"
	"BrightFeed/internal/ports"
	"BrightFeed/internal/positivity"
	"BrightFeed/internal/usecase"
)

// Application wires config to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *sql.DB
	store     ports.ArticleStore
	pipeline  *usecase.Pipeline
	scheduler *usecase.Scheduler
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	var (
		db    *sql.DB
		store ports.ArticleStore
	)
	if cfg.Database.DSN != "" {
		opened, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = opened
		store = storage.NewPostgresRepository(db)
	}

	fetcher := feed.NewFetcher(&http.Client{Timeout: cfg.Fetch.Timeout()})
	analyzer := sentiment.NewClient(
		cfg.Sentiment.InferenceURL,
		cfg.Sentiment.APIKey,
		baseLogger.With("component", "sentiment"),
	)
	filter := positivity.NewFilter(cfg.Filter.Policy())

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Feeds:    fetcher,
		Analyzer: analyzer,
		Store:    store,
		Filter:   filter,
		Sources:  cfg.DomainSources(),
		Logger:   baseLogger.With("component", "pipeline"),
	})

	driver := scheduler.NewCronScheduler(cfg.Scheduler.CronExpression, cfg.Scheduler.Location())

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		db:        db,
		store:     store,
		pipeline:  pipeline,
		scheduler: usecase.NewScheduler(driver, pipeline),
	}, nil
}

// Run performs one immediate refresh cycle, then serves scheduled cycles
// until the context is cancelled.
func (a *Application) Run(ctx context.Context) error {
	defer a.close()

	if a.store != nil {
		if err := a.store.Ensure(ctx); err != nil {
			return fmt.Errorf("prepare store: %w", err)
		}
	}

	if err := a.pipeline.Refresh(ctx); err != nil {
		a.logger.Error("initial refresh failed", "error", err)
	}

	if err := a.scheduler.Start(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	<-ctx.Done()

	stopCtx := context.WithoutCancel(ctx)
	return a.scheduler.Stop(stopCtx)
}

func (a *Application) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
