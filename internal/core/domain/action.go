package domain

import "fmt"

// ActionKind identifies what happens to orphaned images after a scan.
type ActionKind string

const (
	// ActionDelete permanently removes orphaned images.
	ActionDelete ActionKind = "delete"

	// ActionRecycle moves orphaned images to the system trash.
	// This is the default action.
	ActionRecycle ActionKind = "recycle"

	// ActionMove relocates orphaned images to a holding directory.
	ActionMove ActionKind = "move"
)

// Action describes the removal behaviour for one prune run.
type Action struct {
	// Kind selects the removal strategy.
	Kind ActionKind

	// MoveDir is the holding directory for ActionMove.
	// Empty for other kinds.
	MoveDir string
}

// Validate checks the action is internally consistent.
func (a Action) Validate() error {
	switch a.Kind {
	case ActionDelete, ActionRecycle:
		return nil
	case ActionMove:
		if a.MoveDir == "" {
			return fmt.Errorf("%w: move action requires a target directory", ErrInvalidInput)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, string(a.Kind))
	}
}

// String renders the action for logs and history records.
func (a Action) String() string {
	if a.Kind == ActionMove {
		return fmt.Sprintf("move:%s", a.MoveDir)
	}
	return string(a.Kind)
}
