package main

import (
	"fmt"
	"time"

	"github.com/nao1215/salesreport/internal/reporter"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report total sales between two dates",
		Long: `Report prints the total of all sales from --start to --end, both days inclusive.

When the range crosses the start of the fiscal year the report is withheld
(nothing is printed) unless --on-cross says otherwise.

Month-day dates such as 4/1 take the current year. A month-day --end that
falls before --start is read in the following year, so --start 12/25
--end 1/5 covers the turn of the year.

Examples:
  # April 2025 as an HTML heading
  salesreport report --start 2025-04-01 --end 2025-04-30

  # Japanese text with digit grouping
  salesreport report --start 4/1 --end 4/30 -f text -l ja

  # Query across the fiscal-year start anyway
  salesreport report --start 3/25 --end 4/5 --on-cross allow`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}
	addRenderFlags(cmd)
	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
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

	rep := reporter.New(db,
		reporter.WithPolicy(cfg.Policy()),
		reporter.WithLogger(logger),
	)
	report, err := rep.GetSalesBetween(ctx, rng.Start, rng.End, rd)
	if err != nil {
		return err
	}
	if report.Withheld {
		fmt.Fprintf(cmd.ErrOrStderr(), "report withheld: %s\n", report.Reason)
		return nil
	}

	emitter, closeOutput, err := newEmitter(cmd, cfg)
	if err != nil {
		return err
	}
	if _, err := emitter.Emit(report); err != nil {
		_ = closeOutput() //nolint:errcheck // the emit error is more useful
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeOutput()
}
