package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nao1215/salesreport/internal/fiscal"
	"github.com/nao1215/salesreport/internal/render"
	"github.com/nao1215/salesreport/internal/reporter"
)

// DefaultShutdownTimeout bounds how long in-flight requests may run after
// shutdown begins.
const DefaultShutdownTimeout = 10 * time.Second

// RendererFactory returns the renderer for a format name.
type RendererFactory func(format string) (render.Renderer, error)

// Config configures a Server.
type Config struct {
	// Addr is the listen address, e.g. "127.0.0.1:8080".
	Addr string

	// ShutdownTimeout bounds graceful shutdown. Zero means DefaultShutdownTimeout.
	ShutdownTimeout time.Duration

	// Reporter answers report requests.
	Reporter *reporter.Reporter

	// Renderers builds a renderer per request. Nil means render.New with defaults.
	Renderers RendererFactory

	// DefaultFormat is used when a request has no format parameter.
	DefaultFormat string

	// Calendar splits breakdown requests.
	Calendar fiscal.Calendar

	// Concurrency limits breakdown segment queries.
	Concurrency int
}

// clock is swapped in tests.
type clock func() time.Time

// Server serves sales reports over HTTP.
type Server struct {
	router          *chi.Mux
	logger          *slog.Logger
	server          *http.Server
	shutdownTimeout time.Duration

	reporter      *reporter.Reporter
	renderers     RendererFactory
	defaultFormat string
	calendar      fiscal.Calendar
	concurrency   int
	now           clock
}

// New creates a Server. logger receives request logs.
func New(logger *slog.Logger, cfg Config) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
		reporter:        cfg.Reporter,
		renderers:       cfg.Renderers,
		defaultFormat:   cfg.DefaultFormat,
		calendar:        cfg.Calendar,
		concurrency:     cfg.Concurrency,
		now:             time.Now,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = DefaultShutdownTimeout
	}
	if s.renderers == nil {
		s.renderers = func(format string) (render.Renderer, error) {
			return render.New(format)
		}
	}
	if s.defaultFormat == "" {
		s.defaultFormat = render.FormatHTML
	}
	if s.calendar.Start.Month == 0 {
		s.calendar.Start = fiscal.DefaultYearStart
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(RequestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", s.handleHealth)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/sales", s.handleSales)
		r.Get("/sales/breakdown", s.handleBreakdown)
	})

	s.router = router
	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("starting server", "addr", ln.Addr().String())
		serverErrors <- s.server.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("graceful shutdown failed", "error", err)
			return errors.Join(err, s.server.Close())
		}

		if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}
	return nil
}
