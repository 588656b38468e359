package intent

import (
	"time"

	"github.com/Ajay702/Lead-Intent-Scoring-Service-Backend/pkg/logger"
)

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithGenerator enables the remote path. A nil generator keeps fallback-only mode.
func WithGenerator(g Generator) Option {
	return func(c *Classifier) {
		if g != nil {
			c.gen = g
		}
	}
}

// WithTimeout bounds each remote call.
func WithTimeout(d time.Duration) Option {
	return func(c *Classifier) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(l logger.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}
