package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	root         TEXT NOT NULL,
	action       TEXT NOT NULL,
	orphan_count INTEGER NOT NULL,
	acted_count  INTEGER NOT NULL,
	ran_at       DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at DESC);
`

// HistoryStore is a SQLite-backed implementation of driven.HistoryStore.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore creates a history store at the specified data directory.
// If dataDir is empty, defaults to ~/.mdprune/data/history.db.
func NewHistoryStore(dataDir string) (*HistoryStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".mdprune", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL mode for better concurrency between watch and manual runs
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &HistoryStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// Record saves a run summary.
func (s *HistoryStore) Record(ctx context.Context, rec domain.ScanRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (root, action, orphan_count, acted_count, ran_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Root, rec.Action, rec.OrphanCount, rec.ActedCount,
		rec.RanAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting run record: %w", err)
	}
	return nil
}

// Recent returns the most recent records, newest first.
// limit <= 0 returns all records.
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	query := `SELECT id, root, action, orphan_count, acted_count, ran_at
	          FROM runs ORDER BY ran_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying run history: %w", err)
	}
	defer rows.Close()

	var records []domain.ScanRecord
	for rows.Next() {
		var rec domain.ScanRecord
		var ranAt string
		if err := rows.Scan(&rec.ID, &rec.Root, &rec.Action,
			&rec.OrphanCount, &rec.ActedCount, &ranAt); err != nil {
			return nil, fmt.Errorf("scanning run record: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339, ranAt); parseErr == nil {
			rec.RanAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run history: %w", err)
	}
	return records, nil
}
