package model

import (
	"testing"
	"time"
)

// TestNewWithheldReport tests the withheld report constructor.
func TestNewWithheldReport(t *testing.T) {
	t.Parallel()

	rng := NewDateRange(time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC))
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	report := NewWithheldReport(rng, "crosses fiscal year", now)

	t.Run("is withheld with empty body", func(t *testing.T) {
		t.Parallel()
		if !report.Withheld || report.Body != "" || report.Total != 0 {
			t.Errorf("got %+v, want withheld empty report", report)
		}
	})

	t.Run("keeps range, reason and time", func(t *testing.T) {
		t.Parallel()
		if report.Range != rng {
			t.Errorf("Range = %v, want %v", report.Range, rng)
		}
		if report.Reason != "crosses fiscal year" {
			t.Errorf("Reason = %q", report.Reason)
		}
		if !report.GeneratedAt.Equal(now) {
			t.Errorf("GeneratedAt = %v, want %v", report.GeneratedAt, now)
		}
	})
}

// TestReportIsEmpty tests IsEmpty for each kind of report.
func TestReportIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report *Report
		want   bool
	}{
		{"nil", nil, true},
		{"withheld", &Report{Withheld: true, Body: "ignored"}, true},
		{"empty body", &Report{}, true},
		{"rendered", &Report{Body: "<h1>your sales: ¥0</h1>"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.report.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
