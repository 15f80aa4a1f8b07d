package service

import (
	"context"

	"github.com/phrazzld/agent-tasks/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockTaskStore mocks the store.TaskStore interface
type MockTaskStore struct {
	mock.Mock
}

func (m *MockTaskStore) Create(ctx context.Context, prompt string) (domain.Task, error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *MockTaskStore) Get(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *MockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskStore) Events(ctx context.Context, id string) ([]domain.TaskEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskEvent), args.Error(1)
}

func (m *MockTaskStore) AppendEvent(
	ctx context.Context,
	id string,
	eventType domain.EventType,
	content string,
) (domain.TaskEvent, error) {
	args := m.Called(ctx, id, eventType, content)
	return args.Get(0).(domain.TaskEvent), args.Error(1)
}

func (m *MockTaskStore) SetStatus(
	ctx context.Context,
	id string,
	status domain.TaskStatus,
	result *string,
) (domain.Task, error) {
	args := m.Called(ctx, id, status, result)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *MockTaskStore) Transition(
	ctx context.Context,
	id string,
	status domain.TaskStatus,
	result *string,
	eventType domain.EventType,
	content string,
) (domain.Task, domain.TaskEvent, error) {
	args := m.Called(ctx, id, status, result, eventType, content)
	return args.Get(0).(domain.Task), args.Get(1).(domain.TaskEvent), args.Error(2)
}
