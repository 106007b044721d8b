package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	app "github.com/okian/workforce-analyzer/internal/app"
	"github.com/okian/workforce-analyzer/internal/config"
	"github.com/okian/workforce-analyzer/internal/domain/report"
	"github.com/okian/workforce-analyzer/pkg/logger"
	"github.com/okian/workforce-analyzer/pkg/metrics"
)

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const flagFiles = "files"

// exitError carries the exit code for a failure that is not a usage error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(expandFileArgs(args))

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintf(stderr, "Error: %v\n", ee.err)
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n\n%s", err, cmd.UsageString())
	return exitUsage
}

// expandFileArgs rewrites "--files a.csv b.csv" as "--files a.csv --files
// b.csv". Only arguments directly following --files are taken; any other
// positional argument is left for cobra to reject.
func expandFileArgs(args []string) []string {
	out := make([]string, 0, len(args))
	inFiles := false
	for i, arg := range args {
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == "--"+flagFiles:
			inFiles = true
			out = append(out, arg)
			continue
		case strings.HasPrefix(arg, "--"+flagFiles+"="):
			inFiles = true
		case strings.HasPrefix(arg, "-"):
			inFiles = false
		case inFiles && len(out) > 0 && out[len(out)-1] != "--"+flagFiles:
			out = append(out, "--"+flagFiles)
		}
		out = append(out, arg)
	}
	return out
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		files      []string
		reportName string
		output     string
	)
	reports := report.DefaultRegistry().Names()

	cmd := &cobra.Command{
		Use:   "analyzer --files <path> [<path> ...] --report <name>",
		Short: "Employee CSV report generator",
		Long: `analyzer reads one or more employee CSV files and prints a report.

Each file needs the columns name, position, completed_tasks, performance,
skills, team and experience_years. Rows with invalid values are skipped with
a warning on stderr.

Reports: ` + strings.Join(reports, ", ") + `

Example:
  analyzer --files employees1.csv employees2.csv --report performance
  analyzer --files employees.csv --report performance --output report.xlsx`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := app.Request{
				Files:  files,
				Report: reportName,
				Output: output,
			}
			if err := analyze(cmd.Context(), req, stdout, stderr); err != nil {
				return &exitError{code: exitFailure, err: err}
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringArrayVar(&files, flagFiles, nil, "CSV files with employee data; several may follow one --files")
	flags.StringVar(&reportName, "report", "", "report to generate, one of: "+strings.Join(reports, ", "))
	flags.StringVarP(&output, "output", "o", "", "also export the report to a .csv or .xlsx file")
	_ = cmd.MarkFlagRequired(flagFiles)
	_ = cmd.MarkFlagRequired("report")

	return cmd
}

// analyze loads configuration, wires the service and runs one report.
func analyze(ctx context.Context, req app.Request, stdout, stderr io.Writer) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithWriter(stderr), logger.WithFormat(cfg.LogFormat)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return err
	}
	log := logger.Get()

	m := metrics.NewManager(
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithConstLabels(cfg.MetricsLabels),
	)
	svc := app.New(
		app.WithLogger(log),
		app.WithMetrics(m),
		app.WithStdout(stdout),
		app.WithFloatPrecision(cfg.FloatPrecision),
	)

	runErr := svc.Run(ctx, req)

	if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
		log.Warn(ctx, "metrics snapshot not written", logger.Error(err))
	}
	return runErr
}
