package model

import "time"

// Report is a rendered sales report.
// It is created once per request, emitted, and then discarded.
type Report struct {
	// Range is the requested date range.
	Range DateRange `json:"range"`

	// Total is the summed amount. Zero when Withheld is true.
	Total Amount `json:"total"`

	// Body is the rendered text. Empty when Withheld is true.
	Body string `json:"body"`

	// Format names the renderer that produced Body (html, text, markdown, json).
	Format string `json:"format"`

	// Withheld is true when the fiscal boundary policy short-circuited the
	// request. No query was issued and nothing should be emitted.
	Withheld bool `json:"withheld"`

	// Reason explains why the report was withheld.
	Reason string `json:"reason,omitempty"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewWithheldReport returns an empty report for a range the boundary policy
// declined to query.
func NewWithheldReport(r DateRange, reason string, now time.Time) *Report {
	return &Report{
		Range:       r,
		Withheld:    true,
		Reason:      reason,
		GeneratedAt: now,
	}
}

// IsEmpty reports whether there is nothing to emit.
func (r *Report) IsEmpty() bool {
	return r == nil || r.Withheld || r.Body == ""
}
