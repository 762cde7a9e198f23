package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/config"
	"github.com/gokatarajesh/trivia-bank/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-bank/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-bank/internal/logging"
	"github.com/gokatarajesh/trivia-bank/internal/metrics"
	"github.com/gokatarajesh/trivia-bank/internal/question"
	"github.com/gokatarajesh/trivia-bank/internal/question/external"
	"github.com/gokatarajesh/trivia-bank/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	importWorker *question.ImportWorker
	bgCancels    []context.CancelFunc
}

// New bootstraps logger, metrics, Postgres, the optional Redis cache and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("%s pool_max_conns=%d", cfg.Postgres.DSN(), cfg.Postgres.MaxConns)
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	collector := metrics.NewCollector(cfg.MetricsNamespace)

	queries := sqlcgen.New(pool)
	store := question.NewRepositoryStore(
		repository.NewQuestionRepository(queries),
		repository.NewCategoryRepository(queries),
	)

	deps := server.Dependencies{Postgres: pool}

	var categories question.CategoryStore = store
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		categories = question.NewCategoryCache(redisClient, store, cfg.Quiz.CategoryCacheTTL, collector, logger)
		deps.Redis = server.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; category cache disabled")
	}

	questionSvc := question.NewService(store, categories, logger, question.ServiceOptions{
		PageSize: cfg.Quiz.PageSize,
		Metrics:  collector,
	})

	var importWorker *question.ImportWorker
	if cfg.Import.Interval > 0 {
		provider, err := newProvider(cfg.Import)
		if err != nil {
			pool.Close()
			return nil, err
		}
		importer := question.NewImporter(questionSvc, provider, collector, logger)
		importWorker = question.NewImportWorker(importer, question.ImportRequest{
			Amount:     cfg.Import.BatchSize,
			Difficulty: cfg.Import.Difficulty,
		}, cfg.Import.Interval, cfg.Import.Timeout, logger)
		logger.Info().Str("source", cfg.Import.Source).Dur("interval", cfg.Import.Interval).Msg("question import enabled")
	}

	questionHTTP := question.NewHTTPHandler(questionSvc, logger)
	apiServer := server.NewHTTPServer(cfg, logger, deps, questionHTTP, collector)

	return &Application{
		cfg:          cfg,
		logger:       logger,
		pool:         pool,
		redis:        redisClient,
		http:         apiServer,
		importWorker: importWorker,
		bgCancels:    make([]context.CancelFunc, 0, 1),
	}, nil
}

func newProvider(cfg config.Import) (external.Provider, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	switch cfg.Source {
	case external.SourceOpenTDB:
		return external.NewOpenTDBClient(cfg.BaseURL, httpClient), nil
	case external.SourceTriviaAPI:
		return external.NewTriviaAPIClient(cfg.BaseURL, cfg.TriviaAPIKey, httpClient), nil
	case external.SourceGenerator:
		if cfg.GeneratorURL == "" {
			return nil, fmt.Errorf("IMPORT_SOURCE=generator requires GENERATOR_URL")
		}
		return external.NewGeneratorClient(cfg.GeneratorURL, cfg.GeneratorKey, cfg.GeneratorCategory, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown IMPORT_SOURCE %q", cfg.Source)
	}
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		a.stopBackgroundWorkers()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.stopBackgroundWorkers()

	a.pool.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) shutdownTimeout() time.Duration {
	if a.cfg.GracefulShutdownTimeout <= 0 {
		return 20 * time.Second
	}
	return a.cfg.GracefulShutdownTimeout
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.importWorker != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.importWorker.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("question import worker stopped")
			}
		}()
	}
}

func (a *Application) stopBackgroundWorkers() {
	for _, cancel := range a.bgCancels {
		cancel()
	}
	a.bgCancels = a.bgCancels[:0]
}
