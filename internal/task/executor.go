package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/agent-tasks/internal/agent"
	"github.com/phrazzld/agent-tasks/internal/domain"
	"github.com/phrazzld/agent-tasks/internal/events"
	"github.com/phrazzld/agent-tasks/internal/redact"
)

// Event contents recorded by the executor.
const (
	ThinkingContent = "Thinking about the task..."
	FailurePrefix   = "Task failed: "
)

// Config holds configuration for the executor
type Config struct {
	// WorkerCount determines how many tasks execute concurrently
	WorkerCount int

	// QueueSize bounds how many tasks may wait for a worker
	QueueSize int

	// AgentTimeout bounds a single agent invocation
	AgentTimeout time.Duration
}

// DefaultConfig returns a Config with reasonable defaults
func DefaultConfig() Config {
	return Config{
		WorkerCount:  4,
		QueueSize:    100,
		AgentTimeout: 5 * time.Minute,
	}
}

// Executor drives submitted tasks through PENDING → RUNNING → COMPLETED/FAILED.
type Executor struct {
	store    TaskStore
	agent    agent.Agent
	emitter  events.EventEmitter
	observer Observer
	config   Config
	logger   *slog.Logger

	queue    *TaskQueue
	pool     *WorkerPool
	stopOnce sync.Once
}

// NewExecutor creates a new Executor. emitter and observer may be nil.
func NewExecutor(
	store TaskStore,
	a agent.Agent,
	emitter events.EventEmitter,
	observer Observer,
	config Config,
	logger *slog.Logger,
) *Executor {
	if config.AgentTimeout <= 0 {
		config.AgentTimeout = DefaultConfig().AgentTimeout
	}
	if observer == nil {
		observer = nopObserver{}
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "task_executor")
	e := &Executor{
		store:    store,
		agent:    a,
		emitter:  emitter,
		observer: observer,
		config:   config,
		logger:   logger,
		queue:    NewTaskQueue(config.QueueSize, logger),
	}
	e.pool = NewWorkerPool(e.queue, config.WorkerCount, e.processTask, logger)
	return e
}

// Start launches the worker pool.
func (e *Executor) Start() {
	e.pool.Start()
}

// Stop refuses new reservations, cancels running agent invocations and
// waits for the workers to exit. Tasks still queued stay PENDING.
func (e *Executor) Stop() {
	e.stopOnce.Do(func() {
		e.queue.Close()
		e.pool.Stop()
	})
}

// Reserve claims an execution slot for a task that is about to be created.
// Returns an error wrapping ErrQueueFull or ErrQueueClosed if no slot is available.
func (e *Executor) Reserve() (*Reservation, error) {
	r, err := e.queue.Reserve()
	if err != nil {
		e.observer.TaskRejected(err)
		return nil, err
	}
	return r, nil
}

// QueueDepth returns the number of occupied queue slots.
func (e *Executor) QueueDepth() int {
	return e.queue.Len()
}

// processTask handles execution of a single task
func (e *Executor) processTask(ctx context.Context, taskID string, workerID int) {
	logger := e.logger.With("task_id", taskID, "worker_id", workerID)
	// Recording outlives cancellation so interrupted tasks still reach FAILED.
	recordCtx := context.WithoutCancel(ctx)

	task, thinking, err := e.store.Transition(recordCtx, taskID,
		domain.TaskStatusRunning, nil, domain.EventTypeThinking, ThinkingContent)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			logger.Error("refusing to run task twice", "error", err)
		} else {
			logger.Warn("failed to start task", "error", err)
		}
		return
	}
	e.emit(recordCtx, logger, taskID, thinking)
	e.observer.TaskStarted()

	logger.Info("processing task")
	start := time.Now()

	result, runErr := e.invoke(ctx, task.Prompt)

	var (
		status    domain.TaskStatus
		eventType domain.EventType
		content   string
		resultPtr *string
	)
	if runErr == nil {
		status, eventType, content, resultPtr = domain.TaskStatusCompleted, domain.EventTypeComplete, result, &result
	} else {
		status, eventType = domain.TaskStatusFailed, domain.EventTypeError
		content = FailurePrefix + redact.Error(runErr)
		logger.Warn("task execution failed", "error", redact.Error(runErr))
	}

	_, final, err := e.store.Transition(recordCtx, taskID, status, resultPtr, eventType, content)
	duration := time.Since(start)
	// The execution is over either way; observers must see it end.
	e.observer.TaskFinished(status, duration)
	if err != nil {
		logger.Error("failed to record task outcome", "status", status, "error", err)
		return
	}
	e.emit(recordCtx, logger, taskID, final)

	logger.Info("task finished", "status", status, "duration", duration)
}

type outcome struct {
	result string
	err    error
}

// invoke runs the agent under the configured timeout. Panics and agents
// that ignore their context are turned into *agent.ExecutionError.
func (e *Executor) invoke(ctx context.Context, prompt string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, e.config.AgentTimeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: agent.NewExecutionError(fmt.Sprintf("agent panicked: %v", r), nil)}
			}
		}()
		result, err := e.agent.Run(runCtx, prompt)
		done <- outcome{result: result, err: err}
	}()

	var out outcome
	select {
	case out = <-done:
	case <-runCtx.Done():
		out = outcome{err: runCtx.Err()}
	}

	if out.err == nil {
		return out.result, nil
	}

	switch {
	case ctx.Err() != nil:
		return "", agent.NewExecutionError("executor shutting down", ctx.Err())
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return "", agent.NewExecutionError(
			fmt.Sprintf("agent timed out after %s", e.config.AgentTimeout), context.DeadlineExceeded)
	}

	var execErr *agent.ExecutionError
	if errors.As(out.err, &execErr) {
		return "", out.err
	}
	return "", agent.NewExecutionError("agent failed", out.err)
}

func (e *Executor) emit(ctx context.Context, logger *slog.Logger, taskID string, event domain.TaskEvent) {
	if e.emitter == nil {
		return
	}
	if err := e.emitter.EmitEvent(ctx, &events.RecordedEvent{TaskID: taskID, Event: event}); err != nil {
		logger.Warn("failed to emit task event", "event_type", event.Type, "error", err)
	}
}
