package reporter

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MonolithicReporter fetches, checks and formats sales in one place.
//
// It hardcodes the SQL, the April 1 fiscal-year check and the English HTML
// layout. Changing any of those means editing this type, and it cannot be
// tested without a database. Reporter splits the same work across a
// repository, a fiscal.Policy and a render.Renderer.
type MonolithicReporter struct {
	db *sql.DB
}

// NewMonolithicReporter creates a MonolithicReporter over db, which must hold
// a sales table.
func NewMonolithicReporter(db *sql.DB) *MonolithicReporter {
	return &MonolithicReporter{db: db}
}

// GetSalesBetween returns an HTML heading with the total sales from start to
// end inclusive, or "" when the range crosses April 1.
func (m *MonolithicReporter) GetSalesBetween(ctx context.Context, start, end time.Time) (string, error) {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return "", fmt.Errorf("end %s is before start %s", end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	fiscalYear := func(t time.Time) int {
		if t.Month() < time.April {
			return t.Year() - 1
		}
		return t.Year()
	}
	if fiscalYear(start) != fiscalYear(end) {
		return "", nil
	}

	var total int64
	err := m.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(amount), 0) FROM sales WHERE create_at >= ? AND create_at <= ?",
		start.Format(time.DateTime), end.Add(24*time.Hour-time.Second).Format(time.DateTime),
	).Scan(&total)
	if err != nil {
		return "", fmt.Errorf("failed to query sales: %w", err)
	}

	return fmt.Sprintf("<h1>your sales: ¥%d</h1>", total), nil
}
