package actions

import (
	"context"
	"fmt"
	"os"

	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
	"github.com/tidydocs/mdprune-cli/internal/logger"
)

// Ensure Delete implements the interface.
var _ driven.ActionExecutor = (*Delete)(nil)

// Delete permanently removes files.
type Delete struct{}

// NewDelete creates a new delete executor.
func NewDelete() *Delete {
	return &Delete{}
}

// Name identifies the executor for output.
func (d *Delete) Name() string {
	return "Deleted"
}

// Execute removes each file in order. The first failure aborts.
func (d *Delete) Execute(ctx context.Context, paths []string) (int, error) {
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := os.Remove(path); err != nil {
			return i, fmt.Errorf("failed to delete %s: %w", path, err)
		}
		logger.Debug("deleted %s", path)
	}
	return len(paths), nil
}
