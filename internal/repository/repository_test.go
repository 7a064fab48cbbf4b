package repository

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
)

// TestDataAccessError tests error matching and formatting.
func TestDataAccessError(t *testing.T) {
	t.Parallel()

	err := NewDataAccessError("sum sales", sql.ErrConnDone)

	if !errors.Is(err, ErrDataAccess) {
		t.Error("expected errors.Is(err, ErrDataAccess)")
	}
	if !errors.Is(err, sql.ErrConnDone) {
		t.Error("expected the driver error to stay reachable")
	}

	var dae *DataAccessError
	if !errors.As(err, &dae) {
		t.Fatal("expected errors.As to find *DataAccessError")
	}
	if dae.Op != "sum sales" {
		t.Errorf("expected op 'sum sales', got %q", dae.Op)
	}

	msg := err.Error()
	if !strings.Contains(msg, "sum sales") || !strings.Contains(msg, "data access failed") {
		t.Errorf("unexpected message: %q", msg)
	}
}
