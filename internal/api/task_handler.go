package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/agent-tasks/internal/api/shared"
	"github.com/phrazzld/agent-tasks/internal/platform/logger"
	"github.com/phrazzld/agent-tasks/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With("component", "task_handler"),
	}
}

// RegisterRoutes mounts the task endpoints and the health check on r.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.CreateTask)
		r.Get("/", h.ListTasks)
		r.Get("/{"+TaskIDParam+"}", h.GetTask)
		r.Get("/{"+TaskIDParam+"}/events", h.GetTaskEvents)
	})
}

// CreateTask handles POST /tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, MsgRequestTooLarge)
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidRequest)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgPromptRequired)
		return
	}

	task, err := h.taskService.SubmitTask(r.Context(), req.Prompt)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.requestLogger(r).Info("task accepted", "task_id", task.ID)

	// 201 Created: the task exists immediately, execution happens asynchronously
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.GetTask(r.Context(), getTaskID(r))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// GetTaskEvents handles GET /tasks/{id}/events requests
func (h *TaskHandler) GetTaskEvents(w http.ResponseWriter, r *http.Request) {
	evts, err := h.taskService.GetEvents(r.Context(), getTaskID(r))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, eventsToResponse(evts))
}

// Health handles GET /health requests
func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// requestLogger prefers the request-scoped logger set by the trace middleware.
func (h *TaskHandler) requestLogger(r *http.Request) *slog.Logger {
	if l, ok := logger.FromContext(r.Context()); ok {
		return l
	}
	return h.logger
}
