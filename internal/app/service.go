// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/repository"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/worker"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/intent"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/scoring"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/metrics"
)

// Service implements the API dependencies for the lead scoring system.
type Service struct {
	mu sync.RWMutex
	// runMu serializes scoring runs.
	runMu sync.Mutex

	// Core components
	store        repository.Store
	generator    intent.Generator
	classifier   *intent.Classifier
	orchestrator *scoring.Orchestrator

	// Configuration
	template    string
	workerCount int
	aiTimeout   time.Duration

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the backing store. An in-memory store is used otherwise.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithGenerator enables remote intent classification.
func WithGenerator(g intent.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithPromptTemplate sets the classification prompt template.
func WithPromptTemplate(template string) Option {
	return func(s *Service) {
		if template != "" {
			s.template = template
		}
	}
}

// WithWorkerCount sets how many leads are scored concurrently.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithAITimeout bounds each remote classification call.
func WithAITimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.aiTimeout = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		template:    DefaultPrompt,
		workerCount: worker.DefaultSize,
		aiTimeout:   intent.DefaultTimeout,
		logger:      nil, // Will be replaced when service starts
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger.Info(ctx, "starting lead scoring service...")

	if s.store == nil {
		s.store = repository.NewMemoryStore()
		s.logger.Info(ctx, "using in-memory store")
	}

	s.classifier = intent.New(
		intent.WithGenerator(s.generator),
		intent.WithTimeout(s.aiTimeout),
		intent.WithLogger(s.logger.Named("intent")),
	)
	s.orchestrator = scoring.New(s.store, s.store, s.classifier,
		scoring.WithWorkers(s.workerCount),
		scoring.WithLogger(s.logger),
	)

	if n, err := s.store.CountResults(ctx); err == nil {
		metrics.UpdateResultsTotal(n)
	}

	s.started = true
	s.logger.Info(ctx, "lead scoring service started",
		logger.Int("workers", s.workerCount),
		logger.Bool("remote_ai", s.classifier.Remote()),
		logger.Duration("ai_timeout", s.aiTimeout),
	)
	return nil
}

// Stop marks the service stopped. The store is owned by the caller.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "lead scoring service stopped")
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// CreateOffer stores a new offer.
func (s *Service) CreateOffer(ctx context.Context, offer model.Offer) (model.Offer, error) {
	if err := s.ready(); err != nil {
		return model.Offer{}, err
	}
	saved, err := s.store.SaveOffer(ctx, offer)
	if err != nil {
		return model.Offer{}, fmt.Errorf("save offer: %w", err)
	}
	s.logger.Info(ctx, "offer created", logger.Int64("offer_id", saved.ID), logger.String("name", saved.Name))
	return saved, nil
}

// ImportLeads stores uploaded leads.
func (s *Service) ImportLeads(ctx context.Context, leads []model.Lead) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	n, err := s.store.InsertLeads(ctx, leads)
	if err != nil {
		return 0, fmt.Errorf("insert leads: %w", err)
	}
	return n, nil
}

// Score runs the pipeline against the latest offer. Once started, the run
// ignores cancellation of ctx so every listed lead gets a result; each AI
// call stays bounded by its own timeout.
func (s *Service) Score(ctx context.Context) (scoring.Summary, error) {
	if err := s.ready(); err != nil {
		return scoring.Summary{}, err
	}

	offer, err := s.store.LatestOffer(ctx)
	if err != nil {
		return scoring.Summary{}, fmt.Errorf("latest offer: %w", err)
	}

	s.runMu.Lock()
	defer s.runMu.Unlock()

	runCtx := context.WithoutCancel(ctx)
	summary, err := s.orchestrator.Run(runCtx, offer, s.template)
	if n, cerr := s.store.CountResults(runCtx); cerr == nil {
		metrics.UpdateResultsTotal(n)
	}
	return summary, err
}

// Results returns ranked results joined with their leads.
func (s *Service) Results(ctx context.Context) ([]model.ResultView, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.ListResults(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":     s.started,
		"workerCount": s.workerCount,
		"remoteAI":    s.generator != nil,
	}
	if s.started {
		ctx := context.Background()
		if leads, err := s.store.ListLeads(ctx); err == nil {
			stats["totalLeads"] = len(leads)
		}
		if n, err := s.store.CountResults(ctx); err == nil {
			stats["totalResults"] = n
		}
	}
	return stats
}
