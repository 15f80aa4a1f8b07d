package mocks

import (
	"context"

	"github.com/phrazzld/agent-tasks/internal/domain"
	"github.com/phrazzld/agent-tasks/internal/service"
)

// MockTaskService is a mock implementation of service.TaskService for testing
type MockTaskService struct {
	SubmitTaskFn func(ctx context.Context, prompt string) (domain.Task, error)
	GetTaskFn    func(ctx context.Context, id string) (domain.Task, error)
	ListTasksFn  func(ctx context.Context) ([]domain.Task, error)
	GetEventsFn  func(ctx context.Context, id string) ([]domain.TaskEvent, error)
}

var _ service.TaskService = (*MockTaskService)(nil)

// SubmitTask implements service.TaskService
func (m *MockTaskService) SubmitTask(ctx context.Context, prompt string) (domain.Task, error) {
	if m.SubmitTaskFn != nil {
		return m.SubmitTaskFn(ctx, prompt)
	}
	return domain.Task{}, nil
}

// GetTask implements service.TaskService
func (m *MockTaskService) GetTask(ctx context.Context, id string) (domain.Task, error) {
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, id)
	}
	return domain.Task{}, service.ErrTaskNotFound
}

// ListTasks implements service.TaskService
func (m *MockTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx)
	}
	return nil, nil
}

// GetEvents implements service.TaskService
func (m *MockTaskService) GetEvents(ctx context.Context, id string) ([]domain.TaskEvent, error) {
	if m.GetEventsFn != nil {
		return m.GetEventsFn(ctx, id)
	}
	return nil, service.ErrTaskNotFound
}
