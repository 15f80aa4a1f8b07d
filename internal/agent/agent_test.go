package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionError(t *testing.T) {
	t.Parallel()

	t.Run("with cause", func(t *testing.T) {
		t.Parallel()
		cause := context.DeadlineExceeded
		err := NewExecutionError("agent timed out", cause)

		assert.Equal(t, "agent timed out: context deadline exceeded", err.Error())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.ErrorIs(t, err, ErrAgentFailed)
	})

	t.Run("without cause", func(t *testing.T) {
		t.Parallel()
		err := NewExecutionError("model refused", nil)

		assert.Equal(t, "model refused", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("matched through wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("task abc: %w", NewExecutionError("boom", nil))

		var execErr *ExecutionError
		require.True(t, errors.As(wrapped, &execErr))
		assert.Equal(t, "boom", execErr.Diagnostic)
		assert.ErrorIs(t, wrapped, ErrAgentFailed)
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var got string
	a := Func(func(ctx context.Context, prompt string) (string, error) {
		got = prompt
		return "done", nil
	})

	result, err := a.Run(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Equal(t, "hello", got)
}

func TestAlwaysFail(t *testing.T) {
	t.Parallel()

	result, err := AlwaysFail("agent unavailable").Run(context.Background(), "2+2")

	assert.Empty(t, result)
	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "agent unavailable", execErr.Diagnostic)
}
