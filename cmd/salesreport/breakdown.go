package main

import (
	"fmt"
	"time"

	"github.com/nao1215/salesreport/internal/fiscal"
	"github.com/nao1215/salesreport/internal/reporter"
	"github.com/spf13/cobra"
)

// NewBreakdownCmd creates the breakdown command.
func NewBreakdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Report sales per fiscal year",
		Long: `Breakdown splits the range at every fiscal-year start and reports each part.

Each part lies within one fiscal year, so nothing is withheld. Parts are
queried concurrently and printed in date order, one report per line.

Examples:
  salesreport breakdown --start 2024-01-01 --end 2025-12-31 -f text
  salesreport breakdown --start 2025-03-01 --end 2025-04-30 --fiscal-start 01-01`,
		Args: cobra.NoArgs,
		RunE: runBreakdownCmd,
	}
	addRenderFlags(cmd)
	cmd.Flags().IntP("concurrency", "n", reporter.DefaultConcurrency, "Fiscal years queried at once")
	return cmd
}

// runBreakdownCmd executes the breakdown command.
func runBreakdownCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg.Verbose)

	rng, err := parseRangeFlags(cmd, time.Now())
	if err != nil {
		return err
	}

	rd, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	db, err := openSalesDB(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close database", "error", closeErr)
		}
	}()

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	policy := cfg.Policy()
	rep := reporter.New(db,
		reporter.WithPolicy(fiscal.NoBoundary{}),
		reporter.WithLogger(logger),
	)
	reports, err := rep.Breakdown(ctx, policy.Calendar, rng, rd, cfg.Concurrency)
	if err != nil {
		return err
	}

	emitter, closeOutput, err := newEmitter(cmd, cfg)
	if err != nil {
		return err
	}
	for _, report := range reports {
		if _, err := emitter.Emit(report); err != nil {
			_ = closeOutput() //nolint:errcheck // the emit error is more useful
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return closeOutput()
}
