package events

import (
	"context"
	"time"

	"github.com/phrazzld/agent-tasks/internal/domain"
)

// Log is the append-only event sequence of a single task.
// Timestamps are non-decreasing: an append whose clock reading is earlier
// than the previous event reuses the previous timestamp.
// Log is not safe for concurrent use; its owner serializes access.
type Log struct {
	events []domain.TaskEvent
}

// NewLog creates an empty Log.
func NewLog() *Log {
	return &Log{events: make([]domain.TaskEvent, 0, 2)}
}

// Append records a new event stamped with now and returns it.
func (l *Log) Append(eventType domain.EventType, content string, now time.Time) domain.TaskEvent {
	if n := len(l.events); n > 0 {
		if last := l.events[n-1].Timestamp; now.Before(last) {
			now = last
		}
	}

	event := domain.TaskEvent{
		Type:      eventType,
		Content:   content,
		Timestamp: now,
	}
	l.events = append(l.events, event)
	return event
}

// Events returns a copy of the events in append order.
func (l *Log) Events() []domain.TaskEvent {
	out := make([]domain.TaskEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	return len(l.events)
}

// RecordedEvent is an event that has been appended to a task's log.
type RecordedEvent struct {
	// TaskID identifies the task whose log holds the event
	TaskID string `json:"task_id"`

	// Event is the appended event
	Event domain.TaskEvent `json:"event"`
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *RecordedEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the executor to publish progress without knowing the observers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *RecordedEvent) error
}

// EventHandlerFunc adapts an ordinary function to the EventHandler interface.
type EventHandlerFunc func(ctx context.Context, event *RecordedEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *RecordedEvent) error {
	return f(ctx, event)
}
