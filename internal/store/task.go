package store

import (
	"context"

	"github.com/phrazzld/agent-tasks/internal/domain"
)

// TaskStore defines the interface for task state and event log storage.
// All mutating operations on one task are linearizable.
type TaskStore interface {
	// Create allocates a fresh ID and saves a PENDING task with an empty event log.
	// Returns domain.ErrEmptyPrompt for a blank prompt and a wrapped
	// domain.ErrIDGeneration if no ID can be allocated.
	Create(ctx context.Context, prompt string) (domain.Task, error)

	// Get retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Get(ctx context.Context, id string) (domain.Task, error)

	// List returns all tasks in insertion order.
	List(ctx context.Context) ([]domain.Task, error)

	// Events returns the task's events in append order.
	// Returns ErrTaskNotFound if the task does not exist.
	Events(ctx context.Context, id string) ([]domain.TaskEvent, error)

	// AppendEvent adds an event to the task's log and returns it.
	// Returns ErrTaskNotFound if the task does not exist.
	AppendEvent(ctx context.Context, id string, eventType domain.EventType, content string) (domain.TaskEvent, error)

	// SetStatus moves the task to a new status.
	// Returns ErrTaskNotFound if the task does not exist and a wrapped
	// domain.ErrInvalidTransition if the lifecycle forbids the change.
	SetStatus(ctx context.Context, id string, status domain.TaskStatus, result *string) (domain.Task, error)

	// Transition changes the status and appends an event as one step.
	// Nothing is applied when the status change is rejected.
	Transition(
		ctx context.Context,
		id string,
		status domain.TaskStatus,
		result *string,
		eventType domain.EventType,
		content string,
	) (domain.Task, domain.TaskEvent, error)
}
