package reporter

import (
	"context"
	"testing"

	"github.com/nao1215/salesreport/internal/model"
	"github.com/nao1215/salesreport/internal/render"
)

func TestMonolithicReporterMatchesReporter(t *testing.T) {
	t.Parallel()

	db := openSQLite(t, aprilSales())
	mono := NewMonolithicReporter(db.DB())
	split := newTestReporter(db)

	ranges := []model.DateRange{
		model.NewDateRange(date(2025, 4, 1), date(2025, 4, 30)),
		model.NewDateRange(date(2025, 6, 1), date(2025, 6, 30)),
		model.NewDateRange(date(2025, 3, 25), date(2025, 4, 5)),
		model.NewDateRange(date(2024, 4, 1), date(2025, 3, 31)),
	}

	for _, rng := range ranges {
		want, err := split.GetSalesBetween(context.Background(), rng.Start, rng.End, render.NewHTMLRenderer())
		if err != nil {
			t.Fatalf("%s: Reporter error = %v", rng, err)
		}
		got, err := mono.GetSalesBetween(context.Background(), rng.Start, rng.End)
		if err != nil {
			t.Fatalf("%s: MonolithicReporter error = %v", rng, err)
		}
		if got != want.Body {
			t.Errorf("%s: MonolithicReporter = %q, Reporter = %q", rng, got, want.Body)
		}
	}
}

func TestMonolithicReporterInvalidRange(t *testing.T) {
	t.Parallel()

	db := openSQLite(t, nil)
	if _, err := NewMonolithicReporter(db.DB()).GetSalesBetween(context.Background(), date(2025, 5, 1), date(2025, 4, 1)); err == nil {
		t.Error("GetSalesBetween() error = nil, want error")
	}
}
