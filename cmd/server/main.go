package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/gemini"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/http/api"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/http/swagger"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/repository"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/repository/postgres"
	app "github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/app"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/config"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/intent"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/metrics"
)

// HTTP server timeout constants. Scoring runs synchronously inside POST /score,
// so the write timeout is generous.
const (
	readTimeout       = 30 * time.Second
	writeTimeout      = 10 * time.Minute
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal(ctx, "server exited with error", logger.Error(err))
	}
	if err := logger.Sync(); err != nil {
		os.Stderr.WriteString("failed to flush logs: " + err.Error() + "\n")
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	registerRuntimeCollectors()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	template, err := app.LoadPrompt(cfg.PromptPath)
	if err != nil {
		return err
	}

	opts := []app.Option{
		app.WithLogger(log),
		app.WithStore(store),
		app.WithPromptTemplate(template),
		app.WithWorkerCount(cfg.ScoringWorkers),
		app.WithAITimeout(cfg.AITimeout()),
	}
	gen, err := newGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	if gen != nil {
		opts = append(opts, app.WithGenerator(gen))
	}

	svc := app.New(opts...)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, cfg, svc, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or a listener failure
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped", logger.Any("stats", svc.GetStats()))
	return nil
}

// newHandler builds the route table served by the process.
func newHandler(ctx context.Context, cfg *config.Config, deps api.Dependencies, log logger.Logger) http.Handler {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(deps,
		api.WithLogger(log),
		api.WithMaxUploadBytes(cfg.MaxUploadBytes),
	).Register(ctx, mux)
	return mux
}

// openStore selects Postgres when a DSN is configured and memory otherwise.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.Store, func(), error) {
	if cfg.UseMemoryStore() {
		log.Info(ctx, "no database_url configured, using in-memory store")
		return repository.NewMemoryStore(), func() {}, nil
	}

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if cfg.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info(ctx, "database migrations applied")
	}
	log.Info(ctx, "using postgres store", logger.Int("max_conns", int(pool.Config().MaxConns)))
	return postgres.New(pool), pool.Close, nil
}

// newGenerator returns nil when no API key is configured; the classifier then
// uses its heuristic only.
func newGenerator(ctx context.Context, cfg *config.Config, log logger.Logger) (intent.Generator, error) {
	if cfg.GeminiAPIKey == "" {
		log.Warn(ctx, "no gemini api key configured, intent classification uses the heuristic fallback")
		return nil, nil
	}
	client, err := gemini.New(ctx, cfg.GeminiAPIKey,
		gemini.WithModel(cfg.GeminiModel),
		gemini.WithBaseURL(cfg.GeminiBaseURL),
		gemini.WithHTTPClient(&http.Client{Timeout: cfg.AITimeout()}),
	)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "gemini intent classifier enabled", logger.String("model", client.Model()))
	return client, nil
}

// registerRuntimeCollectors exposes Go runtime and process metrics on the
// service registry. Repeated calls are ignored.
func registerRuntimeCollectors() {
	reg := metrics.GetRegistry()
	_ = reg.Register(collectors.NewGoCollector())
	_ = reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}
