package actions

import (
	"fmt"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.ExecutorFactory = (*Factory)(nil)

// Factory selects the executor matching a configured action.
type Factory struct{}

// NewFactory creates a new executor factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the executor for the action. Recycle can fail here
// when the platform has no known trash location, so unsupported setups
// surface before any file is touched.
func (f *Factory) Create(action domain.Action) (driven.ActionExecutor, error) {
	switch action.Kind {
	case domain.ActionDelete:
		return NewDelete(), nil
	case domain.ActionRecycle:
		return NewTrash()
	case domain.ActionMove:
		return NewMove(action.MoveDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, string(action.Kind))
	}
}
