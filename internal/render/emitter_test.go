package render

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/nao1215/salesreport/internal/model"
)

type failingEmitter struct{}

func (failingEmitter) Emit(*model.Report) (int, error) {
	return 0, errors.New("disk full")
}

func TestStreamEmitter(t *testing.T) {
	t.Parallel()

	t.Run("appends newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewStreamEmitter(&buf).Emit(&model.Report{Body: "<h1>your sales: ¥1000</h1>"})
		if err != nil {
			t.Fatalf("Emit() error = %v", err)
		}
		if got := buf.String(); got != "<h1>your sales: ¥1000</h1>\n" {
			t.Errorf("output = %q", got)
		}
		if n != buf.Len() {
			t.Errorf("n = %d, want %d", n, buf.Len())
		}
	})

	t.Run("keeps existing newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewStreamEmitter(&buf).Emit(&model.Report{Body: "line\n"}); err != nil {
			t.Fatalf("Emit() error = %v", err)
		}
		if got := buf.String(); got != "line\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("withheld writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		report := model.NewWithheldReport(model.DateRange{}, "crosses", time.Now())
		n, err := NewStreamEmitter(&buf).Emit(report)
		if err != nil {
			t.Fatalf("Emit() error = %v", err)
		}
		if n != 0 || buf.Len() != 0 {
			t.Errorf("wrote %d bytes, want none", buf.Len())
		}
	})

	t.Run("nil report writes nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewStreamEmitter(&buf).Emit(nil); err != nil {
			t.Fatalf("Emit() error = %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("wrote %q, want nothing", buf.String())
		}
	})
}

func TestMultiEmitter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		m := NewMultiEmitter(NewStreamEmitter(&a), NewStreamEmitter(&b))
		n, err := m.Emit(&model.Report{Body: "total"})
		if err != nil {
			t.Fatalf("Emit() error = %v", err)
		}
		if a.String() != "total\n" || b.String() != "total\n" {
			t.Errorf("outputs = %q, %q", a.String(), b.String())
		}
		if n != 12 {
			t.Errorf("n = %d, want 12", n)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var after bytes.Buffer
		m := NewMultiEmitter(failingEmitter{}, NewStreamEmitter(&after))
		if _, err := m.Emit(&model.Report{Body: "total"}); err == nil {
			t.Fatal("Emit() error = nil, want error")
		}
		if after.Len() != 0 {
			t.Errorf("second emitter received %q", after.String())
		}
	})
}
