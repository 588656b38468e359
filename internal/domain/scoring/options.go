package scoring

import "github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"

// Option applies a configuration option to the Orchestrator.
type Option func(*Orchestrator)

// WithWorkers bounds how many leads are scored concurrently. 1 is sequential.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the run logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l.Named("scoring")
		}
	}
}
