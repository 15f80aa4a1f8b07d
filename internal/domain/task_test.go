package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

	task, err := NewTask("task-1", "2+2", now)
	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, "2+2", task.Prompt)
	assert.Equal(t, TaskStatusPending, task.Status)
	assert.Nil(t, task.Result)
	assert.Equal(t, now, task.CreatedAt)
	assert.Equal(t, now, task.UpdatedAt)

	for _, prompt := range []string{"", "   ", "\n\t "} {
		_, err := NewTask("task-2", prompt, now)
		assert.ErrorIs(t, err, ErrEmptyPrompt, "prompt %q should be rejected", prompt)
	}
}

func TestTaskStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	all := []TaskStatus{TaskStatusPending, TaskStatusRunning, TaskStatusCompleted, TaskStatusFailed}
	allowed := map[TaskStatus][]TaskStatus{
		TaskStatusPending: {TaskStatusRunning},
		TaskStatusRunning: {TaskStatusCompleted, TaskStatusFailed},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, TaskStatusCompleted.IsTerminal())
	assert.True(t, TaskStatusFailed.IsTerminal())
	assert.False(t, TaskStatusRunning.IsTerminal())
	assert.False(t, TaskStatus("paused").IsValid())
}

func TestTask_Transition(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Second)

	tests := []struct {
		name    string
		from    TaskStatus
		to      TaskStatus
		result  *string
		wantErr error
	}{
		{name: "pending to running", from: TaskStatusPending, to: TaskStatusRunning},
		{name: "running to completed", from: TaskStatusRunning, to: TaskStatusCompleted, result: strPtr("4")},
		{name: "running to failed", from: TaskStatusRunning, to: TaskStatusFailed},
		{name: "pending to completed skips running", from: TaskStatusPending, to: TaskStatusCompleted, result: strPtr("4"), wantErr: ErrInvalidTransition},
		{name: "completed is terminal", from: TaskStatusCompleted, to: TaskStatusRunning, wantErr: ErrInvalidTransition},
		{name: "failed is terminal", from: TaskStatusFailed, to: TaskStatusCompleted, result: strPtr("4"), wantErr: ErrInvalidTransition},
		{name: "completed without result", from: TaskStatusRunning, to: TaskStatusCompleted, wantErr: ErrInvalidTransition},
		{name: "failed with result", from: TaskStatusRunning, to: TaskStatusFailed, result: strPtr("oops"), wantErr: ErrInvalidTransition},
		{name: "unknown status", from: TaskStatusRunning, to: TaskStatus("paused"), wantErr: ErrInvalidStatus},
		{name: "unknown status is an invalid transition", from: TaskStatusPending, to: TaskStatus("BOGUS"), wantErr: ErrInvalidTransition},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			task := Task{ID: "task-1", Prompt: "2+2", Status: tc.from, UpdatedAt: now}
			before := task

			err := task.Transition(tc.to, tc.result, later)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.Equal(t, before, task, "task must be unchanged after a rejected transition")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.to, task.Status)
			assert.Equal(t, later, task.UpdatedAt)
			if tc.to == TaskStatusCompleted {
				require.NotNil(t, task.Result)
				assert.Equal(t, *tc.result, *task.Result)
			} else {
				assert.Nil(t, task.Result)
			}
		})
	}
}

func TestTask_Clone(t *testing.T) {
	t.Parallel()

	task := Task{ID: "task-1", Status: TaskStatusCompleted, Result: strPtr("4")}
	clone := task.Clone()

	*clone.Result = "5"
	assert.Equal(t, "4", *task.Result)
}
