package task

import (
	"context"
	"log/slog"
	"sync"
)

// HandlerFunc processes one dequeued task ID.
// ctx is cancelled when the pool stops.
type HandlerFunc func(ctx context.Context, taskID string, workerID int)

// WorkerPool manages a pool of worker goroutines that process task IDs
// from a TaskQueue. It handles graceful shutdown and worker lifecycle.
type WorkerPool struct {
	queue       *TaskQueue
	workerCount int
	handle      HandlerFunc

	// wg tracks active worker goroutines for clean shutdown
	wg sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	startOnce sync.Once
	logger    *slog.Logger
}

// NewWorkerPool creates a new worker pool. A non-positive workerCount defaults to 1.
func NewWorkerPool(queue *TaskQueue, workerCount int, handle HandlerFunc, logger *slog.Logger) *WorkerPool {
	if workerCount <= 0 {
		logger.Warn("invalid worker count specified, using default",
			"specified_count", workerCount,
			"default_count", 1)
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		queue:       queue,
		workerCount: workerCount,
		handle:      handle,
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
	}
}

// Start launches the workers. Subsequent calls are no-ops.
func (p *WorkerPool) Start() {
	p.startOnce.Do(func() {
		p.logger.Info("starting worker pool", "worker_count", p.workerCount)
		for i := 0; i < p.workerCount; i++ {
			p.wg.Add(1)
			go p.worker(i)
		}
	})
}

// Stop cancels the pool context and waits for all workers to return.
func (p *WorkerPool) Stop() {
	p.cancel()
	p.wg.Wait()
	p.logger.Info("worker pool stopped")
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debug("starting worker", "worker_id", id)

	for {
		taskID, ok := p.queue.Dequeue(p.ctx)
		if !ok {
			p.logger.Debug("stopping worker", "worker_id", id)
			return
		}

		// A task dequeued during shutdown is left untouched.
		if p.ctx.Err() != nil {
			p.logger.Info("pool stopping, leaving task queued", "worker_id", id, "task_id", taskID)
			return
		}

		p.handle(p.ctx, taskID, id)
	}
}
