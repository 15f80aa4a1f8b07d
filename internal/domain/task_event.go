package domain

import "time"

// EventType identifies the kind of progress recorded for a task
type EventType string

// Known event types. The set is open; new types can be added without
// changing the event log.
const (
	EventTypeThinking EventType = "THINKING"
	EventTypeComplete EventType = "COMPLETE"
	EventTypeError    EventType = "ERROR"
)

// TaskEvent is an immutable, timestamped progress record attached to a task.
type TaskEvent struct {
	Type      EventType `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
