package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/nao1215/salesreport/internal/model"
	"github.com/nao1215/salesreport/internal/repository"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *SalesDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func at(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func aprilRange() model.DateRange {
	return model.NewDateRange(at(2025, 4, 1, 0, 0, 0), at(2025, 4, 30, 0, 0, 0))
}

// seedApril stores sales summing to 1000 in April 2025 plus two just outside.
func seedApril(t *testing.T, db *SalesDB) {
	t.Helper()

	sales := []model.Sale{
		model.NewSale(999, at(2025, 3, 31, 23, 59, 59)),
		model.NewSale(100, at(2025, 4, 1, 0, 0, 0)),
		model.NewSale(400, at(2025, 4, 15, 12, 30, 0)),
		model.NewSale(500, at(2025, 4, 30, 23, 59, 59)),
		model.NewSale(777, at(2025, 5, 1, 0, 0, 0)),
	}
	if err := db.InsertSales(context.Background(), sales); err != nil {
		t.Fatalf("failed to seed sales: %v", err)
	}
}

// TestOpen tests database opening and creation.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if _, err := os.Stat(filepath.Join(dbDir, DBFileName)); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "missing")
		_, err := Open(dbDir, Options{CreateIfNotExists: false})
		if err == nil {
			t.Fatal("expected error when database does not exist")
		}
		if !strings.Contains(err.Error(), "database not found") {
			t.Errorf("expected 'database not found', got %q", err.Error())
		}
		if _, statErr := os.Stat(dbDir); !os.IsNotExist(statErr) {
			t.Error("directory should not have been created")
		}
	})

	t.Run("CreateIfNotExists=false opens existing database", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()
		db1, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		if err := db1.InsertSale(context.Background(), model.NewSale(1000, at(2025, 4, 2, 10, 0, 0))); err != nil {
			t.Fatalf("failed to insert: %v", err)
		}
		_ = db1.Close()

		db2, err := Open(dbDir, Options{CreateIfNotExists: false, EnableWAL: true})
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer db2.Close()

		count, err := db2.CountSales(context.Background())
		if err != nil {
			t.Fatalf("CountSales failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 persisted sale, got %d", count)
		}
	})
}

// TestSumBetween tests the aggregate over real SQLite.
func TestSumBetween(t *testing.T) {
	t.Parallel()

	t.Run("sums sales within the inclusive range", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedApril(t, db)

		total, err := db.SumBetween(context.Background(), aprilRange())
		if err != nil {
			t.Fatalf("SumBetween failed: %v", err)
		}
		if total != 1000 {
			t.Errorf("expected 1000, got %d", total)
		}
	})

	t.Run("returns zero when no rows match", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedApril(t, db)

		r := model.NewDateRange(at(2024, 1, 1, 0, 0, 0), at(2024, 1, 31, 0, 0, 0))
		total, err := db.SumBetween(context.Background(), r)
		if err != nil {
			t.Fatalf("SumBetween failed: %v", err)
		}
		if total != 0 {
			t.Errorf("expected 0, got %d", total)
		}
	})

	t.Run("includes every later sale up to the last calendar day", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedApril(t, db)

		r := model.NewDateRange(at(2025, 4, 1, 0, 0, 0), at(9999, 12, 31, 0, 0, 0))
		total, err := db.SumBetween(context.Background(), r)
		if err != nil {
			t.Fatalf("SumBetween failed: %v", err)
		}
		if total != 1777 {
			t.Errorf("expected 1777, got %d", total)
		}
	})

	t.Run("returns zero on an empty table", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		total, err := db.SumBetween(context.Background(), aprilRange())
		if err != nil {
			t.Fatalf("SumBetween failed: %v", err)
		}
		if total != 0 {
			t.Errorf("expected 0, got %d", total)
		}
	})

	t.Run("stores non-UTC timestamps by their UTC instant", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		jst := time.FixedZone("JST", 9*60*60)
		// 2025-05-01 08:00 JST is 2025-04-30 23:00 UTC.
		if err := db.InsertSale(context.Background(), model.Sale{
			ID:       "jst-sale",
			Amount:   250,
			CreateAt: time.Date(2025, 5, 1, 8, 0, 0, 0, jst),
		}); err != nil {
			t.Fatalf("InsertSale failed: %v", err)
		}

		total, err := db.SumBetween(context.Background(), aprilRange())
		if err != nil {
			t.Fatalf("SumBetween failed: %v", err)
		}
		if total != 250 {
			t.Errorf("expected 250, got %d", total)
		}
	})
}

// TestListBetween tests listing sales in order.
func TestListBetween(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedApril(t, db)

	sales, err := db.ListBetween(context.Background(), aprilRange())
	if err != nil {
		t.Fatalf("ListBetween failed: %v", err)
	}
	if len(sales) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(sales))
	}

	wantAmounts := []model.Amount{100, 400, 500}
	for i, sale := range sales {
		if sale.Amount != wantAmounts[i] {
			t.Errorf("sale %d: expected amount %d, got %d", i, wantAmounts[i], sale.Amount)
		}
		if !aprilRange().Contains(sale.CreateAt) {
			t.Errorf("sale %d outside range: %s", i, sale.CreateAt)
		}
	}
	if !sales[2].CreateAt.Equal(at(2025, 4, 30, 23, 59, 59)) {
		t.Errorf("timestamp not preserved: %s", sales[2].CreateAt)
	}
}

// TestInsertSale_DuplicateID tests the primary key constraint.
func TestInsertSale_DuplicateID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sale := model.NewSale(10, at(2025, 4, 1, 0, 0, 0))

	if err := db.InsertSale(context.Background(), sale); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	err := db.InsertSale(context.Background(), sale)
	if !errors.Is(err, repository.ErrDataAccess) {
		t.Errorf("expected ErrDataAccess on duplicate, got %v", err)
	}
}

// TestInsertSales_Empty tests that an empty batch is a no-op.
func TestInsertSales_Empty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	if err := db.InsertSales(context.Background(), nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestNew_DoesNotCloseInjectedHandle tests ownership of injected handles.
func TestNew_DoesNotCloseInjectedHandle(t *testing.T) {
	t.Parallel()

	owner := setupTestDB(t)
	borrowed := New(owner.DB())

	if err := borrowed.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := owner.Ping(context.Background()); err != nil {
		t.Errorf("injected handle should remain open: %v", err)
	}
}

// TestSumBetween_DriverFailure tests that driver errors become DataAccessErrors.
func TestSumBetween_DriverFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	driverErr := errors.New("unable to open database file")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM sales")).
		WithArgs("2025-04-01 00:00:00", "2025-05-01 00:00:00").
		WillReturnError(driverErr)

	_, err = New(db).SumBetween(context.Background(), aprilRange())
	if !errors.Is(err, repository.ErrDataAccess) {
		t.Fatalf("expected ErrDataAccess, got %v", err)
	}
	if !errors.Is(err, driverErr) {
		t.Errorf("expected driver error to be wrapped, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}

// TestSumBetween_QueryArguments tests that the range is bound as parameters.
func TestSumBetween_QueryArguments(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`WHERE create_at >= \? AND create_at <= \?`).
		WithArgs("2025-04-01 00:00:00", "2025-04-30 23:59:59").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(1000)))

	total, err := New(db).SumBetween(context.Background(), aprilRange())
	if err != nil {
		t.Fatalf("SumBetween failed: %v", err)
	}
	if total != 1000 {
		t.Errorf("expected 1000, got %d", total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}

// TestInsertSales_RollsBackOnFailure tests transactional inserts.
func TestInsertSales_RollsBackOnFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	sales := []model.Sale{
		{ID: "a", Amount: 100, CreateAt: at(2025, 4, 1, 9, 0, 0)},
		{ID: "b", Amount: 200, CreateAt: at(2025, 4, 2, 9, 0, 0)},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO sales (id, amount, create_at)"))
	prep.ExpectExec().
		WithArgs("a", int64(100), "2025-04-01 09:00:00").
		WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().
		WithArgs("b", int64(200), "2025-04-02 09:00:00").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = New(db).InsertSales(context.Background(), sales)
	if !errors.Is(err, repository.ErrDataAccess) {
		t.Fatalf("expected ErrDataAccess, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled sqlmock expectations: %v", err)
	}
}

// TestParseTimestamp tests the accepted storage formats.
func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-04-01 09:00:00", at(2025, 4, 1, 9, 0, 0)},
		{"2025-04-01T09:00:00Z", at(2025, 4, 1, 9, 0, 0)},
		{"2025-04-01T18:00:00+09:00", at(2025, 4, 1, 9, 0, 0)},
		{"not a time", time.Time{}},
	}

	for _, tt := range tests {
		if got := parseTimestamp(tt.input); !got.Equal(tt.want) {
			t.Errorf("parseTimestamp(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
