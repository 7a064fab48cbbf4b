package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/salesreport/internal/model"
	"github.com/nao1215/salesreport/internal/repository"
)

// DBFileName is the name of the database file created inside the data directory.
const DBFileName = "sales.db"

// timestampLayout is the storage format of create_at.
const timestampLayout = "2006-01-02 15:04:05"

// schema creates the sales table and its range index.
const schema = `
CREATE TABLE IF NOT EXISTS sales (
	id TEXT PRIMARY KEY,
	amount INTEGER NOT NULL,
	create_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sales_create_at ON sales(create_at);
`

// SalesDB is a SalesRepository backed by SQLite.
type SalesDB struct {
	// db is the injected or owned database handle.
	db *sql.DB

	// owned is true when SalesDB opened db itself and must close it.
	owned bool
}

var _ repository.SalesRepository = (*SalesDB)(nil)

// Options configures Open.
type Options struct {
	// CreateIfNotExists creates the directory and database file when missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the sales database inside dbDir and ensures the
// schema exists. The returned SalesDB owns the connection; call Close.
func Open(dbDir string, opts Options) (*SalesDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}
	// Wait for other processes holding the write lock instead of failing with SQLITE_BUSY.
	dsn += "&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &SalesDB{db: db, owned: true}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sdb, nil
}

// New wraps an existing handle. The caller keeps ownership of db: Close on
// the returned SalesDB does not close it. New does not create the schema;
// call Migrate when the handle points at an empty database.
func New(db *sql.DB) *SalesDB {
	return &SalesDB{db: db}
}

// DB returns the underlying handle.
func (s *SalesDB) DB() *sql.DB {
	return s.db
}

// Close releases the connection if SalesDB opened it.
func (s *SalesDB) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// Migrate creates the sales table and index if they do not exist.
func (s *SalesDB) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return repository.NewDataAccessError("create tables", err)
	}
	return nil
}

// InsertSale stores a single sale.
func (s *SalesDB) InsertSale(ctx context.Context, sale model.Sale) error {
	const query = `INSERT INTO sales (id, amount, create_at) VALUES (?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query, sale.ID, int64(sale.Amount), formatTimestamp(sale.CreateAt)); err != nil {
		return repository.NewDataAccessError("insert sale", err)
	}
	return nil
}

// InsertSales stores sales in one transaction. Either all rows are stored or none.
func (s *SalesDB) InsertSales(ctx context.Context, sales []model.Sale) (err error) {
	if len(sales) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return repository.NewDataAccessError("begin transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() //nolint:errcheck // the insert error is more useful
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sales (id, amount, create_at) VALUES (?, ?, ?)`)
	if err != nil {
		return repository.NewDataAccessError("prepare insert", err)
	}
	defer stmt.Close()

	for _, sale := range sales {
		if _, err = stmt.ExecContext(ctx, sale.ID, int64(sale.Amount), formatTimestamp(sale.CreateAt)); err != nil {
			return repository.NewDataAccessError("insert sale", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return repository.NewDataAccessError("commit", err)
	}
	return nil
}

// SumBetween implements repository.SalesRepository.
// The range is queried as the closed interval [Start 00:00:00, End 23:59:59].
func (s *SalesDB) SumBetween(ctx context.Context, r model.DateRange) (model.Amount, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0) FROM sales
	WHERE create_at >= ? AND create_at <= ?
	`

	var total int64
	err := s.db.QueryRowContext(ctx, query,
		formatTimestamp(r.Start),
		formatTimestamp(r.LastSecond()),
	).Scan(&total)
	if err != nil {
		return 0, repository.NewDataAccessError("sum sales", err)
	}
	return model.Amount(total), nil
}

// ListBetween returns the sales within r, oldest first.
func (s *SalesDB) ListBetween(ctx context.Context, r model.DateRange) ([]model.Sale, error) {
	const query = `
	SELECT id, amount, create_at FROM sales
	WHERE create_at >= ? AND create_at <= ?
	ORDER BY create_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, formatTimestamp(r.Start), formatTimestamp(r.LastSecond()))
	if err != nil {
		return nil, repository.NewDataAccessError("list sales", err)
	}
	defer rows.Close()

	sales := make([]model.Sale, 0)
	for rows.Next() {
		var (
			sale      model.Sale
			amount    int64
			timestamp string
		)
		if err := rows.Scan(&sale.ID, &amount, &timestamp); err != nil {
			return nil, repository.NewDataAccessError("scan sale", err)
		}
		sale.Amount = model.Amount(amount)
		sale.CreateAt = parseTimestamp(timestamp)
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, repository.NewDataAccessError("list sales", err)
	}
	return sales, nil
}

// CountSales returns the number of stored sales.
func (s *SalesDB) CountSales(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count); err != nil {
		return 0, repository.NewDataAccessError("count sales", err)
	}
	return count, nil
}

// Ping checks that the store is reachable.
func (s *SalesDB) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return repository.NewDataAccessError("ping", err)
	}
	return nil
}

// formatTimestamp converts t to the storage format in UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// timestampFormats are tried in order by parseTimestamp.
var timestampFormats = []string{
	timestampLayout,
	time.RFC3339,
	time.RFC3339Nano,
}

// parseTimestamp parses a stored create_at value, returning the zero time
// when no format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
