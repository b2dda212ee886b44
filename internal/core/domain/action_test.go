package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_Validate(t *testing.T) {
	t.Run("delete is valid", func(t *testing.T) {
		assert.NoError(t, Action{Kind: ActionDelete}.Validate())
	})

	t.Run("recycle is valid", func(t *testing.T) {
		assert.NoError(t, Action{Kind: ActionRecycle}.Validate())
	})

	t.Run("move requires a target directory", func(t *testing.T) {
		err := Action{Kind: ActionMove}.Validate()

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("move with directory is valid", func(t *testing.T) {
		assert.NoError(t, Action{Kind: ActionMove, MoveDir: "/tmp/hold"}.Validate())
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		err := Action{Kind: "shred"}.Validate()

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "delete", Action{Kind: ActionDelete}.String())
	assert.Equal(t, "recycle", Action{Kind: ActionRecycle}.String())
	assert.Equal(t, "move:/tmp/hold", Action{Kind: ActionMove, MoveDir: "/tmp/hold"}.String())
}
