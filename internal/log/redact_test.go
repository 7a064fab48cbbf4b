package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestRedactHandler_Keys tests that sensitive keys are masked.
func TestRedactHandler_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{"dsn key", "dsn", "file:/tmp/sales.db?mode=rwc", true},
		{"DSN uppercase", "DSN", "file:/tmp/sales.db", true},
		{"password key", "password", "hunter2", true},
		{"key containing token", "refresh_token", "abc", true},
		{"authorization header", "authorization", "Bearer xyz", true},
		{"range is kept", "range", "2025-04-01..2025-04-30", false},
		{"primary_key is kept", "primary_key", "id", false},
		{"amount is kept", "amount", "1000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, true)
			logger.Info("test", tt.key, tt.value)

			out := buf.String()
			masked := strings.Contains(out, MaskValue)
			if masked != tt.wantMask {
				t.Errorf("masked = %v, want %v; output: %s", masked, tt.wantMask, out)
			}
			if tt.wantMask && strings.Contains(out, tt.value) {
				t.Errorf("output leaks value %q: %s", tt.value, out)
			}
		})
	}
}

// TestRedactHandler_Values tests that sensitive values are masked regardless of key.
func TestRedactHandler_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		wantMask bool
	}{
		{"url with password", "postgres://sales:s3cret@db:5432/sales", true},
		{"key value password", "host=db user=sales password=s3cret", true},
		{"bearer token", "Bearer abc.def", true},
		{"jwt", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig", true},
		{"url without password", "https://example.com/api/v1/sales", false},
		{"plain path", "/home/user/.local/share/salesreport", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			NewLogger(&buf, true).Info("test", "value", tt.value)

			if got := strings.Contains(buf.String(), MaskValue); got != tt.wantMask {
				t.Errorf("masked = %v, want %v; output: %s", got, tt.wantMask, buf.String())
			}
		})
	}
}

func TestRedactHandler_LogLevels(t *testing.T) {
	t.Parallel()

	t.Run("non-verbose drops info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)
		logger.Info("hidden")
		logger.Warn("shown")

		if strings.Contains(buf.String(), "hidden") {
			t.Errorf("info message logged in non-verbose mode: %s", buf.String())
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Errorf("warn message missing: %s", buf.String())
		}
	})

	t.Run("verbose keeps debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, true).Debug("details")
		if !strings.Contains(buf.String(), "details") {
			t.Errorf("debug message missing: %s", buf.String())
		}
	})
}

func TestRedactHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true).
		With("password", "hunter2").
		WithGroup("db").
		With("dsn", "file:sales.db")
	logger.Info("opened", slog.Group("conn", slog.String("token", "t0k")))

	out := buf.String()
	for _, leak := range []string{"hunter2", "file:sales.db", "t0k"} {
		if strings.Contains(out, leak) {
			t.Errorf("output leaks %q: %s", leak, out)
		}
	}
	if !strings.Contains(out, "db.dsn="+MaskValue) {
		t.Errorf("grouped dsn not masked: %s", out)
	}
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONLogger(&buf, false).Warn("slow query", "dsn", "file:sales.db", "ms", 120)

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Errorf("expected JSON output, got %s", out)
	}
	if !strings.Contains(out, `"dsn":"`+MaskValue+`"`) {
		t.Errorf("dsn not masked: %s", out)
	}
	if !strings.Contains(out, `"ms":120`) {
		t.Errorf("ms missing: %s", out)
	}
}

func TestNewRedactHandler_NilHandler(t *testing.T) {
	t.Parallel()

	if h := NewRedactHandler(nil); h.handler == nil {
		t.Error("expected default handler")
	}
}
