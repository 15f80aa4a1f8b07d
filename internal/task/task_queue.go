package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Common errors returned by the TaskQueue
var (
	ErrQueueClosed = errors.New("task queue is closed")
	ErrQueueFull   = errors.New("task queue is full")
)

// TaskQueue is a bounded queue of task IDs. Capacity is claimed up front
// with Reserve, so a submission that has been admitted can always be
// enqueued without blocking.
type TaskQueue struct {
	ids    chan string
	slots  chan struct{}
	mu     sync.RWMutex
	closed bool
	logger *slog.Logger
}

// NewTaskQueue creates a new task queue with the specified capacity.
func NewTaskQueue(size int, logger *slog.Logger) *TaskQueue {
	if size <= 0 {
		size = 1
	}
	return &TaskQueue{
		ids:    make(chan string, size),
		slots:  make(chan struct{}, size),
		logger: logger,
	}
}

// Reserve claims one slot in the queue.
// Returns ErrQueueFull when every slot is taken and ErrQueueClosed after Close.
func (q *TaskQueue) Reserve() (*Reservation, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return nil, ErrQueueClosed
	}

	select {
	case q.slots <- struct{}{}:
		return &Reservation{queue: q}, nil
	default:
		return nil, fmt.Errorf("%w: queue capacity %d reached", ErrQueueFull, cap(q.slots))
	}
}

// Dequeue blocks until a task ID is available or ctx is done.
// The slot held by the returned ID is freed.
func (q *TaskQueue) Dequeue(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case id := <-q.ids:
		<-q.slots
		return id, true
	}
}

// Close prevents further reservations. Already reserved slots may still be submitted.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		q.logger.Info("task queue closed", "queued", len(q.ids))
	}
}

// Len returns the number of occupied slots, reserved or queued.
func (q *TaskQueue) Len() int {
	return len(q.slots)
}

// Cap returns the queue capacity.
func (q *TaskQueue) Cap() int {
	return cap(q.slots)
}

// Reservation is a claimed queue slot. Exactly one of Submit or Release
// takes effect; later calls are no-ops.
type Reservation struct {
	queue *TaskQueue
	once  sync.Once
}

// Submit enqueues the task ID into the reserved slot. It never blocks.
func (r *Reservation) Submit(taskID string) {
	r.once.Do(func() {
		r.queue.ids <- taskID
		r.queue.logger.Debug("task enqueued",
			"task_id", taskID,
			"queue_len", len(r.queue.ids),
			"queue_cap", cap(r.queue.ids))
	})
}

// Release gives the slot back without enqueuing anything.
func (r *Reservation) Release() {
	r.once.Do(func() {
		<-r.queue.slots
	})
}
