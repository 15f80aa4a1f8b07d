package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusRunning   TaskStatus = "RUNNING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusFailed    TaskStatus = "FAILED"
)

// IsValid reports whether s is one of the lifecycle states.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusRunning, TaskStatusCompleted, TaskStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// The only legal moves are PENDING -> RUNNING and RUNNING -> COMPLETED|FAILED.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch s {
	case TaskStatusPending:
		return next == TaskStatusRunning
	case TaskStatusRunning:
		return next == TaskStatusCompleted || next == TaskStatusFailed
	default:
		return false
	}
}

// Task is a unit of submitted work tracked through its status lifecycle.
// Result is non-nil exactly when Status is COMPLETED.
type Task struct {
	ID        string     `json:"id"`
	Prompt    string     `json:"prompt"`
	Status    TaskStatus `json:"status"`
	Result    *string    `json:"result"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewTask creates a PENDING task with the given ID and prompt.
// Returns ErrEmptyPrompt if the prompt is blank.
func NewTask(id, prompt string, now time.Time) (*Task, error) {
	if IsBlankPrompt(prompt) {
		return nil, ErrEmptyPrompt
	}

	return &Task{
		ID:        id,
		Prompt:    prompt,
		Status:    TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsBlankPrompt reports whether the prompt is empty or only whitespace.
func IsBlankPrompt(prompt string) bool {
	return strings.TrimSpace(prompt) == ""
}

// Transition moves the task to next, applying the lifecycle rules.
// result must be non-nil when next is COMPLETED and nil otherwise.
// The task is left untouched when an error is returned.
func (t *Task) Transition(next TaskStatus, result *string, now time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidTransition, ErrInvalidStatus, next)
	}

	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, next)
	}

	if next == TaskStatusCompleted && result == nil {
		return fmt.Errorf("%w: %s requires a result", ErrInvalidTransition, next)
	}

	if next != TaskStatusCompleted && result != nil {
		return fmt.Errorf("%w: result is only set on %s", ErrInvalidTransition, TaskStatusCompleted)
	}

	t.Status = next
	if result != nil {
		r := *result
		t.Result = &r
	}
	t.UpdatedAt = now
	return nil
}

// Clone returns a deep copy of the task, so callers cannot alias the stored result.
func (t Task) Clone() Task {
	if t.Result != nil {
		r := *t.Result
		t.Result = &r
	}
	return t
}
