// Package intent classifies a lead's buying intent against an offer.
//
// The Classifier asks an external text generator first and falls back to a
// local heuristic whenever no generator is configured or the call fails in
// any way. Callers always receive a Classification; failures stay inside.
package intent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/internal/domain/model"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/metrics"
)

// Defaults for the remote path.
const (
	DefaultTimeout     = 20 * time.Second
	MaxReasoningLength = 500

	// unmappedPoints is used when a parsed label has no entry in the points table.
	unmappedPoints = 30
)

// Source tells which path produced a Classification.
type Source string

// Classification sources.
const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Fallback outcomes recorded in metrics and logs.
const (
	outcomeRemote       = "remote"
	outcomeNoCredential = "no_credential"
	outcomeCallError    = "call_error"
	outcomeEmpty        = "empty_response"
)

// ErrEmptyText is returned by the remote path when the generator produced no text.
var ErrEmptyText = errors.New("generator returned no text")

// remotePoints maps a label parsed from generated text to AI points.
var remotePoints = map[model.Intent]int{ //nolint:gochecknoglobals // fixed policy table
	model.IntentHigh:   50,
	model.IntentMedium: 25,
	model.IntentLow:    5,
}

// Generator produces text for a prompt. Implementations talk to an external
// text-generation service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Classification is the AI layer's verdict for one lead.
type Classification struct {
	Points    int
	Intent    model.Intent
	Reasoning string
	Source    Source
}

// Classifier turns (offer, lead) into a Classification.
type Classifier struct {
	gen     Generator
	timeout time.Duration
	logger  logger.Logger
}

// New creates a Classifier. Without WithGenerator it only uses the fallback.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		timeout: DefaultTimeout,
		logger:  logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Remote reports whether a generator is configured.
func (c *Classifier) Remote() bool {
	return c.gen != nil
}

// Classify never fails: any problem on the remote path yields the fallback.
func (c *Classifier) Classify(ctx context.Context, offer model.Offer, lead model.Lead, template string) Classification {
	if c.gen == nil {
		metrics.RecordAIRequest(outcomeNoCredential)
		return Fallback(lead)
	}

	res, err := c.remote(ctx, offer, lead, template)
	if err != nil {
		outcome := outcomeCallError
		if errors.Is(err, ErrEmptyText) {
			outcome = outcomeEmpty
		}
		metrics.RecordAIRequest(outcome)
		metrics.RecordError("intent", outcome)
		c.logger.Warn(ctx, "ai classification failed, using heuristic fallback",
			logger.Int64("lead_id", lead.ID),
			logger.String("outcome", outcome),
			logger.Error(err),
		)
		return Fallback(lead)
	}

	metrics.RecordAIRequest(outcomeRemote)
	return res
}

func (c *Classifier) remote(ctx context.Context, offer model.Offer, lead model.Lead, template string) (Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	text, err := c.gen.Generate(ctx, Render(template, offer, lead))
	metrics.RecordAILatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return Classification{}, fmt.Errorf("generate: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Classification{}, ErrEmptyText
	}

	label := ParseIntent(text)
	return Classification{
		Points:    PointsFor(label),
		Intent:    label,
		Reasoning: truncate(strings.TrimSpace(text), MaxReasoningLength),
		Source:    SourceRemote,
	}, nil
}

// ParseIntent returns the first of High, Medium, Low found in text
// (case-insensitive substring, checked in that order). Medium when none match.
func ParseIntent(text string) model.Intent {
	lower := strings.ToLower(text)
	for _, label := range model.Intents {
		if strings.Contains(lower, strings.ToLower(string(label))) {
			return label
		}
	}
	return model.IntentMedium
}

// PointsFor maps a parsed label to AI points.
func PointsFor(label model.Intent) int {
	if p, ok := remotePoints[label]; ok {
		return p
	}
	return unmappedPoints
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
