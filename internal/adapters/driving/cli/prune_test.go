package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
)

// resetPruneFlags undoes flag state a previous Execute left behind.
func resetPruneFlags() {
	pruneExtensions = domain.DefaultExtensions
	pruneExcludes = nil
	pruneDelete = false
	pruneRecycle = false
	pruneMoveDir = ""
	pruneInteractive = false
	for _, name := range []string{"extensions", "exclude", "delete", "recycle", "move", "interactive"} {
		if f := pruneCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

func TestPruneCmd_Use(t *testing.T) {
	assert.Equal(t, "prune [directory]", pruneCmd.Use)
}

func TestPruneCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, "prune")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestPruneCmd_HasActionFlags(t *testing.T) {
	require.NotNil(t, pruneCmd.Flags().Lookup("delete"))
	require.NotNil(t, pruneCmd.Flags().Lookup("recycle"))
	require.NotNil(t, pruneCmd.Flags().Lookup("move"))
	require.NotNil(t, pruneCmd.Flags().Lookup("interactive"))
}

func TestPruneCmd_DefaultsToRecycle(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()

	out, err := execute(t, "prune", "/docs")

	assert.NoError(t, err)
	pruner := pruneService.(*mockPruner)
	assert.Equal(t, domain.ActionRecycle, pruner.lastAction.Kind)
	assert.Equal(t, []string{"/docs/img/b.png", "/docs/unused.png"}, pruner.lastPaths)
	assert.Contains(t, out, "docs/unused.png")
	assert.Contains(t, out, "Recycled 2 image(s).")
}

func TestPruneCmd_DeleteFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()

	out, err := execute(t, "prune", "--delete", "/docs")

	assert.NoError(t, err)
	assert.Equal(t, domain.ActionDelete, pruneService.(*mockPruner).lastAction.Kind)
	assert.Contains(t, out, "Deleted 2 image(s).")
}

func TestPruneCmd_MoveFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()

	out, err := execute(t, "prune", "--move", "/tmp/hold", "/docs")

	assert.NoError(t, err)
	pruner := pruneService.(*mockPruner)
	assert.Equal(t, domain.ActionMove, pruner.lastAction.Kind)
	assert.Equal(t, "/tmp/hold", pruner.lastAction.MoveDir)
	assert.Contains(t, out, "Moved 2 image(s).")
}

func TestPruneCmd_ActionFlagsAreMutuallyExclusive(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()

	_, err := execute(t, "prune", "--delete", "--recycle", "/docs")

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestPruneCmd_ActionFromConfig(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()
	configStore = &mockConfig{values: map[string]any{"action": "delete"}}

	_, err := execute(t, "prune", "/docs")

	assert.NoError(t, err)
	assert.Equal(t, domain.ActionDelete, pruneService.(*mockPruner).lastAction.Kind)
}

func TestPruneCmd_MoveActionFromConfig(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()
	configStore = &mockConfig{values: map[string]any{
		"action":   "move",
		"move_dir": "/tmp/hold",
	}}

	_, err := execute(t, "prune", "/docs")

	assert.NoError(t, err)
	pruner := pruneService.(*mockPruner)
	assert.Equal(t, domain.ActionMove, pruner.lastAction.Kind)
	assert.Equal(t, "/tmp/hold", pruner.lastAction.MoveDir)
}

func TestPruneCmd_FlagWinsOverConfigAction(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()
	configStore = &mockConfig{values: map[string]any{"action": "delete"}}

	_, err := execute(t, "prune", "--recycle", "/docs")

	assert.NoError(t, err)
	assert.Equal(t, domain.ActionRecycle, pruneService.(*mockPruner).lastAction.Kind)
}

func TestPruneCmd_NoOrphansDoesNotPrune(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()
	scanService = &mockScanner{result: &domain.ScanResult{Root: "/docs"}}

	out, err := execute(t, "prune", "/docs")

	assert.NoError(t, err)
	assert.Contains(t, out, "No orphaned images found.")
	pruner := pruneService.(*mockPruner)
	assert.Nil(t, pruner.lastPaths)
	assert.Equal(t, 1, pruner.recorded)
}

func TestPruneCmd_InteractiveNeedsTerminal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()

	// Test processes never run with a terminal on stdin.
	_, err := execute(t, "prune", "--interactive", "/docs")

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoTerminal)
}

func TestPruneCmd_PruneError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()
	pruneService = &mockPruner{err: errors.New("disk on fire")}

	_, err := execute(t, "prune", "/docs")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prune failed")
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestPruneCmd_ScanError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetPruneFlags()
	scanService = &mockScanner{err: domain.ErrNotADirectory}

	_, err := execute(t, "prune", "/docs/readme.md")

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestPruneCmd_ServiceNotConfigured(t *testing.T) {
	oldScan, oldPrune := scanService, pruneService
	scanService, pruneService = nil, nil
	defer func() {
		scanService, pruneService = oldScan, oldPrune
	}()

	_, err := execute(t, "prune", "/docs")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestActedVerb(t *testing.T) {
	assert.Equal(t, "Deleted", actedVerb(domain.ActionDelete))
	assert.Equal(t, "Recycled", actedVerb(domain.ActionRecycle))
	assert.Equal(t, "Moved", actedVerb(domain.ActionMove))
}
