package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
	"github.com/tidydocs/mdprune-cli/internal/logger"
)

// Ensure Move implements the interface.
var _ driven.ActionExecutor = (*Move)(nil)

// Move relocates files to a holding directory, creating it if absent.
// Filename collisions in the target get a numeric suffix before the
// extension, incrementing until a free name is found.
type Move struct {
	targetDir string
}

// NewMove creates a new move executor targeting dir.
func NewMove(dir string) *Move {
	return &Move{targetDir: dir}
}

// Name identifies the executor for output.
func (m *Move) Name() string {
	return "Moved"
}

// Execute moves each file in order. The first failure aborts.
func (m *Move) Execute(ctx context.Context, paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(m.targetDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory %s: %w", m.targetDir, err)
	}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return i, err
		}

		target := filepath.Join(m.targetDir, uniqueName(m.targetDir, filepath.Base(path)))
		if err := moveFile(path, target); err != nil {
			return i, fmt.Errorf("failed to move %s to %s: %w", path, target, err)
		}
		logger.Debug("moved %s -> %s", path, target)
	}
	return len(paths), nil
}
