package driving

import (
	"context"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
)

// ScanOptions configures one orphan scan.
type ScanOptions struct {
	// Extensions is the image extension set to consider.
	Extensions domain.ExtensionSet

	// Excludes are doublestar glob patterns matched against the
	// slashified root-relative path. Matching files and directory
	// subtrees are skipped entirely.
	Excludes []string
}

// Scanner runs orphan detection over a directory tree.
type Scanner interface {
	// Scan walks root and returns the sorted orphan list.
	// It fails only on setup problems: root missing, not a directory,
	// not canonicalizable, or a malformed exclude pattern.
	Scan(ctx context.Context, root string, opts ScanOptions) (*domain.ScanResult, error)
}

// Pruner applies a removal action to scanned orphans.
type Pruner interface {
	// Prune runs the action over paths (a subset of result.Orphans) and
	// records the run in history. It returns the number of files handled;
	// the first action failure aborts the batch and propagates.
	Prune(ctx context.Context, result *domain.ScanResult, action domain.Action, paths []string) (int, error)

	// RecordScan records a dry-run scan in history. Best effort: a
	// recording failure is logged, never surfaced.
	RecordScan(ctx context.Context, result *domain.ScanResult)
}
