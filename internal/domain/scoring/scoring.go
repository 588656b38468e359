// Package scoring runs the two-layer scoring pipeline over every stored lead.
//
// Each lead gets a rule score (0..50) and an AI score (0..50); the blended
// score is their sum capped at 100. One result per lead is upserted so a
// rerun overwrites instead of accumulating.
package scoring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/adapters/worker"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/intent"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/rules"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/metrics"
)

// MaxScore caps the blended score.
const MaxScore = 100

// LeadLister provides the leads to score.
type LeadLister interface {
	ListLeads(ctx context.Context) ([]model.Lead, error)
}

// ResultWriter persists one result per lead, replacing any previous one.
type ResultWriter interface {
	UpsertResult(ctx context.Context, leadID int64, score int, label model.Intent, reasoning string) (model.Result, error)
}

// Classifier produces the AI layer verdict. It must not fail.
type Classifier interface {
	Classify(ctx context.Context, offer model.Offer, lead model.Lead, template string) intent.Classification
}

// Summary describes a finished run.
type Summary struct {
	RunID     string
	Processed int
	ByIntent  map[model.Intent]int
	Duration  time.Duration
}

// Orchestrator scores leads against an offer.
type Orchestrator struct {
	leads      LeadLister
	results    ResultWriter
	classifier Classifier
	workers    int
	logger     logger.Logger
}

// New creates an Orchestrator.
func New(leads LeadLister, results ResultWriter, classifier Classifier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		leads:      leads,
		results:    results,
		classifier: classifier,
		workers:    worker.DefaultSize,
		logger:     logger.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Blend combines the two layer scores.
func Blend(rule, ai int) int {
	return min(MaxScore, rule+ai)
}

// Run scores every lead. It fails only when leads cannot be listed or a
// result cannot be persisted; AI trouble is absorbed by the classifier.
func (o *Orchestrator) Run(ctx context.Context, offer model.Offer, template string) (Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := o.logger.With(logger.String("run_id", runID), logger.Int64("offer_id", offer.ID))

	leads, err := o.leads.ListLeads(ctx)
	if err != nil {
		recordRun("failed", start)
		metrics.RecordError("scoring", "list_leads")
		return Summary{RunID: runID}, fmt.Errorf("%w: %w", ErrListLeads, err)
	}

	log.Info(ctx, "scoring run started", logger.Int("leads", len(leads)), logger.Int("workers", o.workers))

	var (
		mu       sync.Mutex
		done     int
		byIntent = make(map[model.Intent]int, len(model.Intents))
	)

	pool := worker.NewPool(o.workers, worker.WithName("scoring-pool"), worker.WithLogger(o.logger))
	err = worker.Each(ctx, pool, leads, func(ctx context.Context, lead model.Lead) error {
		res, err := o.scoreLead(ctx, offer, lead, template)
		if err != nil {
			return err
		}
		mu.Lock()
		done++
		byIntent[res.Intent]++
		mu.Unlock()
		return nil
	})

	summary := Summary{RunID: runID, Processed: done, ByIntent: byIntent, Duration: time.Since(start)}
	if err != nil {
		recordRun("failed", start)
		log.Error(ctx, "scoring run aborted", logger.Int("processed", done), logger.Error(err))
		return summary, err
	}

	recordRun("success", start)
	log.Info(ctx, "scoring run finished",
		logger.Int("processed", done),
		logger.Any("by_intent", byIntent),
		logger.Duration("took", summary.Duration),
	)
	return summary, nil
}

func (o *Orchestrator) scoreLead(ctx context.Context, offer model.Offer, lead model.Lead, template string) (model.Result, error) {
	start := time.Now()

	rule := rules.Score(lead)
	ai := o.classifier.Classify(ctx, offer, lead, template)
	total := Blend(rule, ai.Points)

	res, err := o.results.UpsertResult(ctx, lead.ID, total, ai.Intent, ai.Reasoning)
	if err != nil {
		metrics.RecordError("scoring", "persist")
		return model.Result{}, fmt.Errorf("%w: lead %d: %w", ErrPersist, lead.ID, err)
	}

	metrics.RecordLeadScored(string(res.Intent), float64(time.Since(start).Milliseconds()))
	return res, nil
}

func recordRun(status string, start time.Time) {
	metrics.RecordScoringRun(status, float64(time.Since(start).Milliseconds()))
}
