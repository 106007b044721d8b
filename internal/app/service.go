// Package service runs reports over employee CSV files: it resolves the
// report, loads the files, generates the table and writes it out.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okian/workforce-analyzer/internal/adapters/loader"
	"github.com/okian/workforce-analyzer/internal/adapters/render"
	"github.com/okian/workforce-analyzer/internal/domain/model"
	"github.com/okian/workforce-analyzer/internal/domain/report"
	"github.com/okian/workforce-analyzer/pkg/logger"
	"github.com/okian/workforce-analyzer/pkg/metrics"
)

// Messages written to stdout when there is nothing to show.
const (
	MsgNoData      = "no valid employee data found in the given files"
	MsgEmptyReport = "report is empty (nothing to display)"
)

// unknownReportLabel is the metrics label for runs with an unresolved report.
const unknownReportLabel = "unknown"

// EmployeeLoader reads employees from a list of paths.
type EmployeeLoader interface {
	Load(ctx context.Context, paths []string) ([]model.Employee, error)
}

// Request describes one analyzer run.
type Request struct {
	Files  []string
	Report string
	// Output is an optional export path (.csv or .xlsx).
	Output string
}

// Service executes report runs.
type Service struct {
	registry  *report.Registry
	loader    EmployeeLoader
	stdout    io.Writer
	precision int

	logger  logger.Logger
	metrics *metrics.Manager
}

// New constructs a Service. Without options it uses the built-in reports, a
// CSV loader, os.Stdout and two decimals.
func New(opts ...Option) *Service {
	s := &Service{
		registry:  report.DefaultRegistry(),
		stdout:    os.Stdout,
		precision: render.DefaultPrecision,
		logger:    logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		s.loader = loader.New(
			loader.WithLogger(s.logger.Named("loader")),
			loader.WithMetrics(s.metrics),
		)
	}
	return s
}

// Run resolves the report, loads the files and prints the generated table.
// An unknown report or a bad output path fails before any file is read.
// Runs without data, or with an empty report, print a message and succeed.
func (s *Service) Run(ctx context.Context, req Request) error {
	log := s.logger.With(
		logger.String("run_id", uuid.NewString()),
		logger.String("report", req.Report),
	)

	strategy, err := s.registry.Lookup(req.Report)
	if err != nil {
		s.metrics.RecordRun(unknownReportLabel, metrics.StatusError)
		return err
	}
	name := strategy.Name()

	if err := s.run(ctx, log, strategy, req); err != nil {
		s.metrics.RecordRun(name, metrics.StatusError)
		log.Debug(ctx, "run failed", logger.Error(err))
		return err
	}
	return nil
}

func (s *Service) run(ctx context.Context, log logger.Logger, strategy report.Strategy, req Request) error {
	name := strategy.Name()

	if len(req.Files) == 0 {
		return ErrNoFiles
	}
	if req.Output != "" {
		if err := render.CheckFormat(req.Output); err != nil {
			return err
		}
	}

	employees, err := s.loader.Load(ctx, req.Files)
	if err != nil {
		return err
	}
	log.Info(ctx, "employees loaded",
		logger.Int("files", len(req.Files)),
		logger.Int("employees", len(employees)),
	)
	if len(employees) == 0 {
		s.metrics.RecordRun(name, metrics.StatusEmpty)
		return s.println(MsgNoData)
	}

	start := time.Now()
	table := strategy.Generate(employees)
	elapsed := time.Since(start)
	s.metrics.RecordReport(name, table.Len(), elapsed)
	log.Info(ctx, "report generated",
		logger.Int("rows", table.Len()),
		logger.String("elapsed", elapsed.String()),
	)
	if table.Empty() {
		s.metrics.RecordRun(name, metrics.StatusEmpty)
		return s.println(MsgEmptyReport)
	}

	if err := render.Table(s.stdout, table, s.precision); err != nil {
		return err
	}
	if req.Output != "" {
		if err := render.Export(req.Output, name, table, s.precision); err != nil {
			return err
		}
		log.Info(ctx, "report exported", logger.String("path", req.Output))
	}

	s.metrics.RecordRun(name, metrics.StatusOK)
	return nil
}

func (s *Service) println(msg string) error {
	if _, err := fmt.Fprintln(s.stdout, msg); err != nil {
		return fmt.Errorf("%w: %w", render.ErrWrite, err)
	}
	return nil
}
