package driven

import (
	"context"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
)

// HistoryStore persists summaries of past scan and prune runs.
type HistoryStore interface {
	// Record saves a run summary.
	Record(ctx context.Context, rec domain.ScanRecord) error

	// Recent returns the most recent records, newest first,
	// up to limit (all records when limit <= 0).
	Recent(ctx context.Context, limit int) ([]domain.ScanRecord, error)

	// Close releases the underlying storage.
	Close() error
}
