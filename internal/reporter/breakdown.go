package reporter

import (
	"context"
	"fmt"

	"github.com/nao1215/salesreport/internal/fiscal"
	"github.com/nao1215/salesreport/internal/model"
	"github.com/nao1215/salesreport/internal/render"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of segment queries Breakdown runs at once
// when the caller passes a non-positive limit.
const DefaultConcurrency = 4

// Breakdown reports rng once per fiscal year it touches. Each segment lies
// within a single fiscal year, so the boundary policy never applies.
// Reports are returned in date order. If any segment fails, Breakdown returns
// the first error and no reports.
func (r *Reporter) Breakdown(ctx context.Context, cal fiscal.Calendar, rng model.DateRange, rd render.Renderer, concurrency int) ([]*model.Report, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	segments := cal.Split(rng)
	reports := make([]*model.Report, len(segments))

	r.logger.Debug("starting breakdown",
		"range", rng.String(),
		"segments", len(segments),
		"concurrency", concurrency,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, seg := range segments {
		g.Go(func() error {
			report, err := r.report(gctx, seg, rd)
			if err != nil {
				return fmt.Errorf("segment FY%d: %w", cal.FiscalYear(seg.Start), err)
			}
			// Each goroutine owns one index.
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
