package task

import (
	"context"
	"time"

	"github.com/phrazzld/agent-tasks/internal/domain"
)

// TaskStore is the subset of store.TaskStore the executor needs.
type TaskStore interface {
	// Transition changes the status and appends an event as one step.
	Transition(
		ctx context.Context,
		id string,
		status domain.TaskStatus,
		result *string,
		eventType domain.EventType,
		content string,
	) (domain.Task, domain.TaskEvent, error)
}

// Observer receives lifecycle notifications from the executor.
// Implementations must be safe for concurrent use.
type Observer interface {
	// TaskRejected is called when a reservation is refused.
	TaskRejected(err error)

	// TaskStarted is called once a task has moved to RUNNING.
	TaskStarted()

	// TaskFinished is called after a task reached a terminal status.
	TaskFinished(status domain.TaskStatus, duration time.Duration)
}

type nopObserver struct{}

func (nopObserver) TaskRejected(error) {}

func (nopObserver) TaskStarted() {}

func (nopObserver) TaskFinished(domain.TaskStatus, time.Duration) {}
