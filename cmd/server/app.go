package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/agent-tasks/internal/agent"
	"github.com/phrazzld/agent-tasks/internal/config"
	"github.com/phrazzld/agent-tasks/internal/events"
	"github.com/phrazzld/agent-tasks/internal/metrics"
	"github.com/phrazzld/agent-tasks/internal/platform/gemini"
	"github.com/phrazzld/agent-tasks/internal/service"
	"github.com/phrazzld/agent-tasks/internal/store"
	"github.com/phrazzld/agent-tasks/internal/task"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Metrics
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Task handling
	taskStore    *store.MemoryTaskStore
	eventEmitter *events.InMemoryEventEmitter
	agent        agent.Agent
	executor     *task.Executor
	taskService  service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized and the executor started.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.MustNewMetrics(app.registry)

	app.taskStore = store.NewMemoryTaskStore()

	// Metrics observe every recorded event
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(app.metrics)

	var err error
	app.agent, err = setupAgent(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	app.executor = task.NewExecutor(
		app.taskStore,
		app.agent,
		app.eventEmitter,
		app.metrics,
		executorConfig(cfg.Task),
		logger,
	)
	metrics.MustRegisterQueueDepth(app.registry, app.executor.QueueDepth)

	app.taskService, err = service.NewTaskService(app.taskStore, app.executor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.executor.Start()

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupAgent selects the Gemini agent when an API key is configured and the
// local agent otherwise.
func setupAgent(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (agent.Agent, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Info("No Gemini API key configured, using local agent")
		return agent.NewLocalAgent(logger), nil
	}

	a, err := gemini.NewGeminiAgent(ctx, logger.With("component", "gemini_agent"), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini agent: %w", err)
	}
	logger.Info("Gemini agent initialized successfully", "model", cfg.ModelName)
	return a, nil
}

func executorConfig(cfg config.TaskConfig) task.Config {
	return task.Config{
		WorkerCount:  cfg.WorkerCount,
		QueueSize:    cfg.QueueSize,
		AgentTimeout: time.Duration(cfg.AgentTimeoutSeconds) * time.Second,
	}
}

// Run serves HTTP on the configured port until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	ln, err := listen(app.config.Server.Port)
	if err != nil {
		return err
	}

	if err := app.serve(ctx, ln, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.executor != nil {
		app.executor.Stop()
	}

	app.logger.Info("Application shutdown completed")
}
