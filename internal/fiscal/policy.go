package fiscal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/salesreport/internal/model"
)

// ErrCrossesFiscalYear is returned by the reporter when a policy rejects a
// range that spans more than one fiscal year.
var ErrCrossesFiscalYear = errors.New("date range crosses a fiscal-year boundary")

// ErrInvalidMonthDay is returned when a fiscal-year start cannot be parsed.
var ErrInvalidMonthDay = errors.New("invalid month-day: expected MM-DD")

// ErrUnknownAction is returned by ParseAction for unsupported names.
var ErrUnknownAction = errors.New("unknown boundary action: expected withhold, reject or allow")

// Action is what the reporter should do with a range.
type Action int

const (
	// ActionQuery runs the query as usual.
	ActionQuery Action = iota

	// ActionWithhold skips the query and yields an empty report.
	ActionWithhold

	// ActionReject skips the query and returns ErrCrossesFiscalYear.
	ActionReject
)

// String returns the configuration name of the action.
func (a Action) String() string {
	switch a {
	case ActionQuery:
		return "allow"
	case ActionWithhold:
		return "withhold"
	case ActionReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseAction parses "withhold", "reject" or "allow" (case-insensitive).
// "query" is accepted as an alias of "allow".
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "withhold":
		return ActionWithhold, nil
	case "reject":
		return ActionReject, nil
	case "allow", "query":
		return ActionQuery, nil
	default:
		return ActionQuery, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// Decision is the outcome of evaluating a range.
type Decision struct {
	Action Action

	// Reason is set whenever Action is not ActionQuery.
	Reason string
}

// Query is the decision to run the query.
var Query = Decision{Action: ActionQuery}

// Policy evaluates a date range before the reporter queries it.
type Policy interface {
	Evaluate(r model.DateRange) Decision
}

// MonthDay is the first day of a fiscal year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// DefaultYearStart is April 1.
var DefaultYearStart = MonthDay{Month: time.April, Day: 1}

// ParseMonthDay parses "MM-DD" or "M/D".
func ParseMonthDay(s string) (MonthDay, error) {
	s = strings.TrimSpace(s)
	sep := "-"
	if strings.Contains(s, "/") {
		sep = "/"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return MonthDay{}, fmt.Errorf("%w: %q", ErrInvalidMonthDay, s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return MonthDay{}, fmt.Errorf("%w: %q", ErrInvalidMonthDay, s)
	}
	day, err := strconv.Atoi(parts[1])
	// Day 29 and later do not exist every year.
	if err != nil || day < 1 || day > 28 {
		return MonthDay{}, fmt.Errorf("%w: %q", ErrInvalidMonthDay, s)
	}
	return MonthDay{Month: time.Month(month), Day: day}, nil
}

// String returns "MM-DD".
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// Calendar maps dates to fiscal years that begin on Start.
type Calendar struct {
	Start MonthDay
}

// FiscalYear returns the fiscal year t falls in, named after the calendar
// year it begins in. With an April 1 start, 2025-03-31 is FY2024 and
// 2025-04-01 is FY2025.
func (c Calendar) FiscalYear(t time.Time) int {
	y := t.Year()
	if model.Day(t).Before(c.YearStart(y)) {
		return y - 1
	}
	return y
}

// YearStart returns the first day of fiscal year fy.
func (c Calendar) YearStart(fy int) time.Time {
	return time.Date(fy, c.Start.Month, c.Start.Day, 0, 0, 0, 0, time.UTC)
}

// YearRange returns the full date range of fiscal year fy.
func (c Calendar) YearRange(fy int) model.DateRange {
	return model.NewDateRange(c.YearStart(fy), c.YearStart(fy+1).AddDate(0, 0, -1))
}

// Crosses reports whether r starts and ends in different fiscal years.
func (c Calendar) Crosses(r model.DateRange) bool {
	return c.FiscalYear(r.Start) != c.FiscalYear(r.End)
}

// Split cuts r at every fiscal-year start it contains. A range within one
// fiscal year is returned unchanged. An invalid range yields nil.
func (c Calendar) Split(r model.DateRange) []model.DateRange {
	if r.Validate() != nil {
		return nil
	}

	var segments []model.DateRange
	start := r.Start
	for fy := c.FiscalYear(r.Start); fy < c.FiscalYear(r.End); fy++ {
		next := c.YearStart(fy + 1)
		segments = append(segments, model.NewDateRange(start, next.AddDate(0, 0, -1)))
		start = next
	}
	return append(segments, model.NewDateRange(start, r.End))
}

// BoundaryPolicy applies OnCross to ranges that straddle a fiscal-year start.
type BoundaryPolicy struct {
	Calendar Calendar
	OnCross  Action
}

// NewBoundaryPolicy creates a BoundaryPolicy for fiscal years beginning on start.
func NewBoundaryPolicy(start MonthDay, onCross Action) *BoundaryPolicy {
	return &BoundaryPolicy{
		Calendar: Calendar{Start: start},
		OnCross:  onCross,
	}
}

// DefaultPolicy withholds ranges crossing April 1.
func DefaultPolicy() *BoundaryPolicy {
	return NewBoundaryPolicy(DefaultYearStart, ActionWithhold)
}

// Evaluate implements Policy.
func (p *BoundaryPolicy) Evaluate(r model.DateRange) Decision {
	if p.OnCross == ActionQuery || !p.Calendar.Crosses(r) {
		return Query
	}
	return Decision{
		Action: p.OnCross,
		Reason: fmt.Sprintf("%s spans FY%d and FY%d (fiscal year starts %s)",
			r, p.Calendar.FiscalYear(r.Start), p.Calendar.FiscalYear(r.End), p.Calendar.Start),
	}
}

// NoBoundary queries every range.
type NoBoundary struct{}

// Evaluate implements Policy.
func (NoBoundary) Evaluate(model.DateRange) Decision {
	return Query
}
