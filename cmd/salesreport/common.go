package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/nao1215/salesreport/internal/config"
	"github.com/nao1215/salesreport/internal/log"
	"github.com/nao1215/salesreport/internal/model"
	"github.com/nao1215/salesreport/internal/render"
	"github.com/nao1215/salesreport/internal/repository/sqlite"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the redacting logger and installs it as the default.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	logger := log.NewLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)
	return logger
}

// buildConfig layers defaults, the configuration file and changed flags,
// then validates the result.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	stringFlags := map[string]*string{
		"db-dir":       &cfg.DBDir,
		"format":       &cfg.Format,
		"locale":       &cfg.Locale,
		"currency":     &cfg.Currency,
		"fiscal-start": &cfg.FiscalYearStart,
		"on-cross":     &cfg.BoundaryAction,
		"output":       &cfg.OutputFile,
		"addr":         &cfg.ServeAddr,
	}
	for name, dst := range stringFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	if f := cmd.Flags().Lookup("concurrency"); f != nil && f.Changed {
		n, err := strconv.Atoi(f.Value.String())
		if err != nil {
			return nil, fmt.Errorf("invalid --concurrency: %w", err)
		}
		cfg.Concurrency = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// addRenderFlags registers the flags shared by report and breakdown.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().String("start", "", "First day of the range (2025-04-01, 2025/04/01 or 4/1)")
	cmd.Flags().String("end", "", "Last day of the range, inclusive")
	cmd.Flags().StringP("format", "f", config.DefaultFormat, "Output format: "+strings.Join(render.Formats(), ", "))
	cmd.Flags().StringP("locale", "l", config.DefaultLocale, "Label language: en or ja")
	cmd.Flags().String("currency", config.DefaultCurrency, "Currency symbol printed before amounts")
	cmd.Flags().String("fiscal-start", config.DefaultFiscalYearStart, "First day of the fiscal year (MM-DD)")
	cmd.Flags().String("on-cross", config.DefaultBoundaryAction,
		"Action when the range crosses the fiscal-year start: withhold, reject or allow")
	cmd.Flags().StringP("output", "o", "", "Also write the report to this file")

	_ = cmd.MarkFlagRequired("start") //nolint:errcheck // flag defined above
	_ = cmd.MarkFlagRequired("end")   //nolint:errcheck // flag defined above
}

// parseRangeFlags reads --start and --end. Month-day forms use the current year.
func parseRangeFlags(cmd *cobra.Command, now time.Time) (model.DateRange, error) {
	startStr, err := cmd.Flags().GetString("start")
	if err != nil {
		return model.DateRange{}, err
	}
	endStr, err := cmd.Flags().GetString("end")
	if err != nil {
		return model.DateRange{}, err
	}

	start, err := model.ParseDate(startStr, now)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("--start: %w", err)
	}
	end, err := model.ParseEndDate(endStr, start)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("--end: %w", err)
	}

	rng := model.NewDateRange(start, end)
	if err := rng.Validate(); err != nil {
		return model.DateRange{}, err
	}
	return rng, nil
}

// newRenderer builds the configured renderer. Colour is used only for a
// terminal with no file output.
func newRenderer(cfg *config.Config) (render.Renderer, error) {
	useColor := !color.NoColor && cfg.OutputFile == ""
	return cfg.Renderer(useColor)
}

// openSalesDB opens the database in cfg.DBDir, creating it when missing.
func openSalesDB(cfg *config.Config, logger *slog.Logger) (*sqlite.SalesDB, error) {
	logger.Debug("opening sales database", "dir", cfg.DBDir)
	db, err := sqlite.Open(cfg.DBDir, sqlite.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open sales database: %w", err)
	}
	return db, nil
}

// newEmitter returns an emitter for stdout plus cfg.OutputFile when set.
// The returned close function must be called when done.
func newEmitter(cmd *cobra.Command, cfg *config.Config) (render.Emitter, func() error, error) {
	stdout := render.NewStreamEmitter(cmd.OutOrStdout())
	if cfg.OutputFile == "" {
		return stdout, func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(cfg.OutputFile) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return render.NewMultiEmitter(stdout, render.NewStreamEmitter(f)), f.Close, nil
}

// signalContext returns a context canceled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
