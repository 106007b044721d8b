package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/okian/workforce-analyzer/internal/sampledata"
	"github.com/okian/workforce-analyzer/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// createFile opens the --out destination.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		cfg     = sampledata.Config{Count: sampledata.DefaultCount, Seed: sampledata.DefaultSeed}
		out     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "sample-data",
		Short: "Generate employee CSV files for the analyzer",
		Example: `  sample-data --count 100 --out employees.csv
  sample-data --count 20 --invalid-ratio 0.1 --seed 7`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			level := "warn"
			if verbose {
				level = "debug"
			}
			if err := logger.Init(logger.WithWriter(stderr)); err != nil {
				return err
			}
			if err := logger.SetLevelString(level); err != nil {
				return err
			}

			w := stdout
			if out != "" {
				f, cerr := createFile(out)
				if cerr != nil {
					return fmt.Errorf("create output: %w", cerr)
				}
				defer func() {
					if cerr := f.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("close output: %s: %w", out, cerr)
					}
				}()
				w = f
			}

			stats, err := sampledata.Generate(cmd.Context(), w, cfg)
			if err != nil {
				return err
			}
			if out != "" {
				logger.Get().Info(cmd.Context(), "sample file written",
					logger.String("path", out),
					logger.Int("rows", stats.Rows),
					logger.Int("invalid", stats.Invalid),
				)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVar(&cfg.Count, "count", sampledata.DefaultCount, "number of employee rows")
	flags.Uint64Var(&cfg.Seed, "seed", sampledata.DefaultSeed, "random seed")
	flags.Float64Var(&cfg.InvalidRatio, "invalid-ratio", 0, "share of rows with a corrupted completed_tasks value (0..1)")
	flags.StringVar(&out, "out", "", "output file (default stdout)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}
