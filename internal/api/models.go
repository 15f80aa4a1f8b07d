package api

import (
	"time"

	"github.com/phrazzld/agent-tasks/internal/domain"
)

// CreateTaskRequest defines the payload for the task submission endpoint.
type CreateTaskRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// TaskResponse represents the response data for a task.
// Result is null until the task completes.
type TaskResponse struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Status    string    `json:"status"`
	Result    *string   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskEventResponse represents one entry of a task's event log.
type TaskEventResponse struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

func taskToResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Prompt:    t.Prompt,
		Status:    string(t.Status),
		Result:    t.Result,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}

func eventsToResponse(evts []domain.TaskEvent) []TaskEventResponse {
	out := make([]TaskEventResponse, 0, len(evts))
	for _, e := range evts {
		out = append(out, TaskEventResponse{
			Type:      string(e.Type),
			Content:   e.Content,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
