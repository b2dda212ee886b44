package driven

import (
	"context"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
)

// ActionExecutor applies a removal action to a batch of orphaned files.
type ActionExecutor interface {
	// Name identifies the executor for output ("Deleted", "Recycled", "Moved").
	Name() string

	// Execute processes paths in order and returns the number of files
	// handled successfully. The first failure aborts the batch and is
	// returned with the count of files already processed; partial
	// destructive operations are never silently swallowed.
	Execute(ctx context.Context, paths []string) (int, error)
}

// ExecutorFactory creates the executor matching a configured action.
type ExecutorFactory interface {
	// Create returns an executor for the action, or an error if the
	// action is invalid or unsupported on this platform.
	Create(action domain.Action) (ActionExecutor, error)
}
