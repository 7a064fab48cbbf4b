package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/salesreport/internal/fiscal"
	"github.com/nao1215/salesreport/internal/model"
	"github.com/nao1215/salesreport/internal/render"
	"github.com/nao1215/salesreport/internal/repository"
)

// Reporter produces sales reports for date ranges.
// It is safe for concurrent use when its repository is.
type Reporter struct {
	repo     repository.SalesRepository
	policy   fiscal.Policy
	renderer render.Renderer
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithPolicy sets the fiscal-year boundary policy.
// Default is fiscal.DefaultPolicy (withhold ranges crossing April 1).
func WithPolicy(p fiscal.Policy) Option {
	return func(r *Reporter) {
		if p != nil {
			r.policy = p
		}
	}
}

// WithRenderer sets the renderer used when GetSalesBetween receives nil.
// Default is English HTML.
func WithRenderer(rd render.Renderer) Option {
	return func(r *Reporter) {
		if rd != nil {
			r.renderer = rd
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reporter) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock sets the function used to stamp GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a Reporter backed by repo.
func New(repo repository.SalesRepository, opts ...Option) *Reporter {
	r := &Reporter{
		repo:     repo,
		policy:   fiscal.DefaultPolicy(),
		renderer: render.NewHTMLRenderer(),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetSalesBetween reports total sales from start to end, both days inclusive.
// A nil renderer selects the Reporter's default.
//
// Errors:
//   - *model.InvalidRangeError when end is before start
//   - fiscal.ErrCrossesFiscalYear when the policy rejects the range
//   - an error matching repository.ErrDataAccess when the store fails
//
// When the policy withholds the range, the returned report has Withheld set
// and an empty Body, and the repository is not called.
func (r *Reporter) GetSalesBetween(ctx context.Context, start, end time.Time, rd render.Renderer) (*model.Report, error) {
	rng := model.NewDateRange(start, end)
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	decision := r.policy.Evaluate(rng)
	switch decision.Action {
	case fiscal.ActionWithhold:
		r.logger.Info("report withheld", "range", rng.String(), "reason", decision.Reason)
		return model.NewWithheldReport(rng, decision.Reason, r.now()), nil
	case fiscal.ActionReject:
		return nil, fmt.Errorf("%w: %s", fiscal.ErrCrossesFiscalYear, decision.Reason)
	case fiscal.ActionQuery:
	}

	return r.report(ctx, rng, rd)
}

// report queries and renders rng without consulting the policy.
func (r *Reporter) report(ctx context.Context, rng model.DateRange, rd render.Renderer) (*model.Report, error) {
	if rd == nil {
		rd = r.renderer
	}

	r.logger.Debug("querying sales", "range", rng.String())

	amount, err := r.repo.SumBetween(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales for %s: %w", rng, err)
	}

	total := model.SalesTotal{Range: rng, Amount: amount}
	return &model.Report{
		Range:       rng,
		Total:       amount,
		Body:        rd.Render(total),
		Format:      rd.Format(),
		GeneratedAt: r.now(),
	}, nil
}
