package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/agent-tasks/internal/domain"
	"github.com/phrazzld/agent-tasks/internal/store"
	"github.com/phrazzld/agent-tasks/internal/task"
)

// Executor admits tasks for background execution.
type Executor interface {
	// Reserve claims an execution slot before the task is created.
	Reserve() (*task.Reservation, error)
}

// TaskService provides task submission and polling operations
type TaskService interface {
	// SubmitTask creates a PENDING task for prompt and schedules it.
	// Returns ErrEmptyPrompt for a blank prompt and an error wrapping
	// ErrServiceBusy when no execution slot is free; in both cases nothing is created.
	SubmitTask(ctx context.Context, prompt string) (domain.Task, error)

	// GetTask retrieves a snapshot of a task.
	// Returns ErrTaskNotFound if the task does not exist.
	GetTask(ctx context.Context, id string) (domain.Task, error)

	// ListTasks returns snapshots of every task in submission order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// GetEvents returns the task's event log in append order.
	// Returns ErrTaskNotFound if the task does not exist.
	GetEvents(ctx context.Context, id string) ([]domain.TaskEvent, error)
}

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "submit_task", "get_events")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns known sentinel errors directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, ErrEmptyPrompt):
		return ErrEmptyPrompt
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store    store.TaskStore
	executor Executor
	logger   *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(taskStore store.TaskStore, executor Executor, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "taskStore cannot be nil"}
	}
	if executor == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "executor cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		store:    taskStore,
		executor: executor,
		logger:   logger.With("component", "task_service"),
	}, nil
}

// SubmitTask validates the prompt, reserves an execution slot, creates the
// task and hands it to the executor.
func (s *taskServiceImpl) SubmitTask(ctx context.Context, prompt string) (domain.Task, error) {
	if domain.IsBlankPrompt(prompt) {
		return domain.Task{}, ErrEmptyPrompt
	}

	reservation, err := s.executor.Reserve()
	if err != nil {
		s.logger.WarnContext(ctx, "rejecting task submission", "error", err)
		return domain.Task{}, fmt.Errorf("%w: %w", ErrServiceBusy, err)
	}

	t, err := s.store.Create(ctx, prompt)
	if err != nil {
		reservation.Release()
		s.logger.ErrorContext(ctx, "failed to create task", "error", err)
		return domain.Task{}, NewTaskServiceError("submit_task", "failed to create task", err)
	}

	reservation.Submit(t.ID)

	s.logger.InfoContext(ctx, "task submitted", "task_id", t.ID)
	return t, nil
}

// GetTask retrieves a snapshot of a task.
func (s *taskServiceImpl) GetTask(ctx context.Context, id string) (domain.Task, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Task{}, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return t, nil
}

// ListTasks returns every task in submission order.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// GetEvents returns the task's event log.
func (s *taskServiceImpl) GetEvents(ctx context.Context, id string) ([]domain.TaskEvent, error) {
	evts, err := s.store.Events(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get_events", "failed to retrieve task events", err)
	}
	return evts, nil
}
