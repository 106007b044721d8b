package loader

import (
	"github.com/okian/workforce-analyzer/pkg/logger"
	"github.com/okian/workforce-analyzer/pkg/metrics"
)

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets the logger that receives row-level warnings.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithMetrics records file and row counters on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(ld *Loader) {
		ld.metrics = m
	}
}
