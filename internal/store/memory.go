package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/agent-tasks/internal/domain"
	"github.com/phrazzld/agent-tasks/internal/events"
	"github.com/phrazzld/agent-tasks/internal/platform/clock"
)

// IDGenerator returns a fresh task identifier.
type IDGenerator func() (string, error)

// NewUUID is the default IDGenerator, producing random (version 4) UUIDs.
func NewUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// record is the stored state of one task.
type record struct {
	task domain.Task
	log  *events.Log
}

// MemoryTaskStore implements TaskStore with process-lifetime in-memory storage.
// Entries are never removed.
type MemoryTaskStore struct {
	mu      sync.RWMutex
	records map[string]*record
	order   []string
	clock   clock.Clock
	newID   IDGenerator
}

// MemoryTaskStoreOption customizes a MemoryTaskStore.
type MemoryTaskStoreOption func(*MemoryTaskStore)

// WithClock sets the clock used for task and event timestamps.
func WithClock(c clock.Clock) MemoryTaskStoreOption {
	return func(s *MemoryTaskStore) {
		s.clock = c
	}
}

// WithIDGenerator sets the task ID generator.
func WithIDGenerator(gen IDGenerator) MemoryTaskStoreOption {
	return func(s *MemoryTaskStore) {
		s.newID = gen
	}
}

// NewMemoryTaskStore creates an empty MemoryTaskStore.
func NewMemoryTaskStore(opts ...MemoryTaskStoreOption) *MemoryTaskStore {
	s := &MemoryTaskStore{
		records: make(map[string]*record),
		order:   make([]string, 0),
		clock:   clock.System{},
		newID:   NewUUID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create allocates a fresh ID and saves a PENDING task with an empty event log.
func (s *MemoryTaskStore) Create(ctx context.Context, prompt string) (domain.Task, error) {
	if domain.IsBlankPrompt(prompt) {
		return domain.Task{}, domain.ErrEmptyPrompt
	}

	id, err := s.newID()
	if err != nil {
		return domain.Task{}, fmt.Errorf("%w: %v", domain.ErrIDGeneration, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; exists {
		return domain.Task{}, fmt.Errorf("%w: %w: task %s", domain.ErrIDGeneration, ErrDuplicate, id)
	}

	task, err := domain.NewTask(id, prompt, s.clock.Now())
	if err != nil {
		return domain.Task{}, err
	}

	s.records[id] = &record{task: *task, log: events.NewLog()}
	s.order = append(s.order, id)
	return task.Clone(), nil
}

// Get retrieves a task by its ID.
func (s *MemoryTaskStore) Get(ctx context.Context, id string) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return rec.task.Clone(), nil
}

// List returns all tasks in insertion order.
func (s *MemoryTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.records[id].task.Clone())
	}
	return tasks, nil
}

// Events returns the task's events in append order.
func (s *MemoryTaskStore) Events(ctx context.Context, id string) ([]domain.TaskEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return rec.log.Events(), nil
}

// AppendEvent adds an event to the task's log and returns it.
func (s *MemoryTaskStore) AppendEvent(
	ctx context.Context,
	id string,
	eventType domain.EventType,
	content string,
) (domain.TaskEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.TaskEvent{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return rec.log.Append(eventType, content, s.clock.Now()), nil
}

// SetStatus moves the task to a new status.
func (s *MemoryTaskStore) SetStatus(
	ctx context.Context,
	id string,
	status domain.TaskStatus,
	result *string,
) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	if err := rec.task.Transition(status, result, s.clock.Now()); err != nil {
		return domain.Task{}, fmt.Errorf("task %s: %w", id, err)
	}
	return rec.task.Clone(), nil
}

// Transition changes the status and appends an event as one step.
func (s *MemoryTaskStore) Transition(
	ctx context.Context,
	id string,
	status domain.TaskStatus,
	result *string,
	eventType domain.EventType,
	content string,
) (domain.Task, domain.TaskEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return domain.Task{}, domain.TaskEvent{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	now := s.clock.Now()
	if err := rec.task.Transition(status, result, now); err != nil {
		return domain.Task{}, domain.TaskEvent{}, fmt.Errorf("task %s: %w", id, err)
	}
	event := rec.log.Append(eventType, content, now)
	return rec.task.Clone(), event, nil
}

// Len returns the number of stored tasks.
func (s *MemoryTaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Ensure MemoryTaskStore implements TaskStore
var _ TaskStore = (*MemoryTaskStore)(nil)
