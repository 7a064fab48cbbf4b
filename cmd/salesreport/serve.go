package main

import (
	"github.com/nao1215/salesreport/internal/log"
	"github.com/nao1215/salesreport/internal/render"
	"github.com/nao1215/salesreport/internal/reporter"
	"github.com/nao1215/salesreport/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sales reports over HTTP",
		Long: `Serve starts an HTTP server with the following routes:

  GET /healthz
  GET /api/v1/sales?start=2025-04-01&end=2025-04-30&format=html
  GET /api/v1/sales/breakdown?start=2025-03-01&end=2025-05-31

Request logs are written to stderr as JSON. The server shuts down
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("addr", "", "Listen address (default: 127.0.0.1:8080)")
	cmd.Flags().StringP("format", "f", "", "Default output format when a request has none")
	cmd.Flags().StringP("locale", "l", "", "Label language: en or ja")
	cmd.Flags().String("on-cross", "", "Action when a range crosses the fiscal-year start")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg.Verbose)

	db, err := openSalesDB(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close database", "error", closeErr)
		}
	}()

	policy := cfg.Policy()
	rep := reporter.New(db,
		reporter.WithPolicy(policy),
		reporter.WithLogger(logger),
	)

	srv := server.New(log.NewJSONLogger(cmd.ErrOrStderr(), true), server.Config{
		Addr:     cfg.ServeAddr,
		Reporter: rep,
		Renderers: func(format string) (render.Renderer, error) {
			return cfg.RendererFor(format, false)
		},
		DefaultFormat: cfg.Format,
		Calendar:      policy.Calendar,
		Concurrency:   cfg.Concurrency,
	})

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	return srv.Start(ctx)
}
