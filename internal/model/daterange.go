package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar date layout used for flags, query
// parameters and report output.
const DateLayout = "2006-01-02"

// ErrInvalidRange is returned when a DateRange ends before it starts.
var ErrInvalidRange = errors.New("invalid date range: end is before start")

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// InvalidRangeError carries the offending range.
// errors.Is(err, ErrInvalidRange) is true for every InvalidRangeError.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: %s > %s", ErrInvalidRange, e.Start.Format(DateLayout), e.End.Format(DateLayout))
}

// Unwrap returns ErrInvalidRange.
func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// DateRange is a pair of calendar dates. Both ends are inclusive: a sale made
// at any time on End belongs to the range.
type DateRange struct {
	// Start is the first day of the range (midnight UTC).
	Start time.Time `json:"start"`

	// End is the last day of the range (midnight UTC).
	End time.Time `json:"end"`
}

// NewDateRange truncates start and end to their calendar day in UTC.
// It does not validate ordering; call Validate for that.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		Start: Day(start),
		End:   Day(end),
	}
}

// Day returns midnight UTC of the calendar day t falls on in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate returns an *InvalidRangeError when End is before Start.
func (r DateRange) Validate() error {
	if r.End.Before(r.Start) {
		return &InvalidRangeError{Start: r.Start, End: r.End}
	}
	return nil
}

// Contains reports whether t falls on a day within the range.
func (r DateRange) Contains(t time.Time) bool {
	day := Day(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Days returns the number of calendar days covered, counting both ends.
// An invalid range covers zero days.
func (r DateRange) Days() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// LastSecond returns 23:59:59 on End. Stores keeping second-precision
// timestamps query the closed interval [Start, LastSecond], which stays
// within End's year even for 9999-12-31.
func (r DateRange) LastSecond() time.Time {
	return r.End.Add(24*time.Hour - time.Second)
}

// String returns the range as "2006-01-02..2006-01-02".
func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}

// fullDateLayouts are tried in order by ParseDate.
var fullDateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"2006/1/2",
	time.RFC3339,
}

// ParseDate parses a calendar date.
//
// Full dates ("2025-03-25", "2025/03/25", RFC 3339) are used as is.
// Month-day forms ("3/25", "03-25") take their year from ref, which lets
// callers write the short literals used in fiscal boundary examples.
func ParseDate(s string, ref time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	for _, layout := range fullDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}

	month, day, ok := parseMonthDay(s)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t := time.Date(ref.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises 2/30 into March; reject instead of guessing.
	if t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseEndDate parses the end of a range whose first day is start.
// A month-day end that would fall before start is read in the following
// year, so "12/25" to "1/5" spans the year end. Full dates are never moved.
func ParseEndDate(s string, start time.Time) (time.Time, error) {
	end, err := ParseDate(s, start)
	if _, _, ok := parseMonthDay(strings.TrimSpace(s)); !ok {
		return end, err
	}
	if err == nil && !end.Before(start) {
		return end, nil
	}
	next, nextErr := ParseDate(s, start.AddDate(1, 0, 0))
	if nextErr != nil {
		return end, err
	}
	return next, nil
}

// parseMonthDay splits "M/D" or "MM-DD".
func parseMonthDay(s string) (int, int, bool) {
	sep := "/"
	if strings.Contains(s, "-") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, false
	}
	return month, day, true
}
