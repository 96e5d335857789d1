package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"quotehub/internal/model"
)

// SQLiteRecorder persists snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the refresher writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quote_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at    INTEGER NOT NULL,
			ticker         TEXT NOT NULL,
			price          REAL,
			change         REAL,
			percent_change REAL,
			volume         REAL,
			quote_time     INTEGER,
			source         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ticker_ts ON quote_snapshots(ticker, recorded_at)`,

		`CREATE TABLE IF NOT EXISTS fetch_failures (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at INTEGER NOT NULL,
			ticker      TEXT NOT NULL,
			kind        TEXT,
			detail      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_failures_ts ON fetch_failures(recorded_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordQuote(q *model.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var chg, pct sql.NullFloat64
	if q.Change != nil {
		chg = sql.NullFloat64{Float64: *q.Change, Valid: true}
	}
	if q.PercentChange != nil {
		pct = sql.NullFloat64{Float64: *q.PercentChange, Valid: true}
	}
	_, err := r.db.Exec(`INSERT INTO quote_snapshots
		(recorded_at, ticker, price, change, percent_change, volume, quote_time, source)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), q.Ticker, q.Price, chg, pct, q.Volume,
		q.Timestamp.Unix(), string(q.Source),
	)
	return err
}

func (r *SQLiteRecorder) RecordFailure(f *FetchFailure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := f.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.Exec(`INSERT INTO fetch_failures
		(recorded_at, ticker, kind, detail)
		VALUES (?,?,?,?)`,
		at.Unix(), f.Ticker, f.Kind, f.Detail,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
