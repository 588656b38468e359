// Package worker runs per-item jobs over a bounded pool of goroutines.
package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/metrics"
)

// DefaultSize is the pool size when none is given.
const DefaultSize = 4

// Pool bounds how many jobs run at once.
type Pool struct {
	size   int
	name   string
	logger logger.Logger
}

// NewPool creates a pool of size workers. Sizes below 1 fall back to DefaultSize.
func NewPool(size int, opts ...Option) *Pool {
	if size < 1 {
		size = DefaultSize
	}
	p := &Pool{
		size:   size,
		name:   "worker-pool",
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.Named(p.name)
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Each calls fn for every item with at most p.Size() calls in flight.
// The first error cancels the context passed to the remaining calls; items
// not yet started are skipped. Each returns that first error.
func Each[T any](ctx context.Context, p *Pool, items []T, fn func(ctx context.Context, item T) error) error {
	metrics.UpdateWorkerCount(p.size)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(gctx, item); err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.logger.Warn(ctx, "pool stopped early", logger.Int("jobs", len(items)), logger.Error(err))
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p.logger.Debug(ctx, "pool drained", logger.Int("jobs", len(items)), logger.Int("workers", p.size))
	return nil
}
