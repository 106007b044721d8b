package service

import (
	"io"

	"github.com/okian/workforce-analyzer/internal/domain/report"
	"github.com/okian/workforce-analyzer/pkg/logger"
	"github.com/okian/workforce-analyzer/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records run metrics on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithRegistry replaces the built-in report registry.
func WithRegistry(r *report.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLoader replaces the CSV loader.
func WithLoader(l EmployeeLoader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithStdout sets where tables and informational messages are written.
func WithStdout(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.stdout = w
		}
	}
}

// WithFloatPrecision sets the decimals used for floats in output.
func WithFloatPrecision(p int) Option {
	return func(s *Service) {
		if p >= 0 {
			s.precision = p
		}
	}
}
