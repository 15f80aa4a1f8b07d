package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/agent-tasks/internal/domain"
	"github.com/phrazzld/agent-tasks/internal/mocks"
	"github.com/phrazzld/agent-tasks/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)

const fixedTaskID = "22222222-2222-4222-8222-222222222222"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(svc service.TaskService) http.Handler {
	r := chi.NewRouter()
	NewTaskHandler(svc, testLogger()).RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func pendingTask(prompt string) domain.Task {
	return domain.Task{
		ID:        fixedTaskID,
		Prompt:    prompt,
		Status:    domain.TaskStatusPending,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}

func TestTaskHandler_CreateTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		submit         func(ctx context.Context, prompt string) (domain.Task, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful_creation",
			body: `{"prompt":"2+2"}`,
			submit: func(ctx context.Context, prompt string) (domain.Task, error) {
				return pendingTask(prompt), nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"id":"` + fixedTaskID + `","prompt":"2+2","status":"PENDING","result":null,` +
				`"created_at":"2025-04-01T12:00:00Z","updated_at":"2025-04-01T12:00:00Z"}`,
		},
		{
			name:           "empty_prompt",
			body:           `{"prompt":""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Prompt is required"}`,
		},
		{
			name:           "missing_prompt",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Prompt is required"}`,
		},
		{
			name: "whitespace_prompt_rejected_by_service",
			body: `{"prompt":"   "}`,
			submit: func(ctx context.Context, prompt string) (domain.Task, error) {
				return domain.Task{}, service.ErrEmptyPrompt
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Prompt is required"}`,
		},
		{
			name:           "malformed_json",
			body:           `{"prompt":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request format"}`,
		},
		{
			name:           "wrong_type",
			body:           `{"prompt":42}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request format"}`,
		},
		{
			name:           "oversized_body",
			body:           `{"prompt":"` + strings.Repeat("x", 2<<20) + `"}`,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   `{"error":"Request body too large"}`,
		},
		{
			name: "server_busy",
			body: `{"prompt":"work"}`,
			submit: func(ctx context.Context, prompt string) (domain.Task, error) {
				return domain.Task{}, fmt.Errorf("%w: queue full", service.ErrServiceBusy)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"Server is busy, try again later"}`,
		},
		{
			name: "internal_error_is_not_leaked",
			body: `{"prompt":"work"}`,
			submit: func(ctx context.Context, prompt string) (domain.Task, error) {
				return domain.Task{}, &service.TaskServiceError{
					Operation: "submit_task",
					Message:   "failed to create task",
					Err:       errors.New("secret=hunter2 at /srv/app/store.go"),
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			called := false
			svc := &mocks.MockTaskService{
				SubmitTaskFn: func(ctx context.Context, prompt string) (domain.Task, error) {
					called = true
					if tc.submit == nil {
						t.Errorf("SubmitTask should not be called")
						return domain.Task{}, nil
					}
					return tc.submit(ctx, prompt)
				},
			}

			rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/tasks", tc.body)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			assert.Equal(t, tc.submit != nil, called)
			if tc.expectedStatus == http.StatusServiceUnavailable {
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			}
		})
	}
}

func TestTaskHandler_GetTask(t *testing.T) {
	t.Parallel()

	result := "4"
	completed := pendingTask("2+2")
	completed.Status = domain.TaskStatusCompleted
	completed.Result = &result

	svc := &mocks.MockTaskService{
		GetTaskFn: func(ctx context.Context, id string) (domain.Task, error) {
			if id == fixedTaskID {
				return completed, nil
			}
			return domain.Task{}, service.ErrTaskNotFound
		},
	}
	router := newTestRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/tasks/"+fixedTaskID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body TaskResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "COMPLETED", body.Status)
	require.NotNil(t, body.Result)
	assert.Equal(t, "4", *body.Result)

	rec = doRequest(t, router, http.MethodGet, "/tasks/not-a-task", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
	for _, path := range []string{"/tasks/%20" + fixedTaskID, "/tasks/" + fixedTaskID + "%20"} {
		rec = doRequest(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "IDs must match exactly: %s", path)
	}
}

func TestTaskHandler_ListTasks(t *testing.T) {
	t.Parallel()

	t.Run("empty_list_is_an_array", func(t *testing.T) {
		t.Parallel()
		rec := doRequest(t, newTestRouter(&mocks.MockTaskService{}), http.MethodGet, "/tasks", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("tasks_in_order", func(t *testing.T) {
		t.Parallel()
		first, second := pendingTask("a"), pendingTask("b")
		second.ID = "33333333-3333-4333-8333-333333333333"
		svc := &mocks.MockTaskService{
			ListTasksFn: func(ctx context.Context) ([]domain.Task, error) {
				return []domain.Task{first, second}, nil
			},
		}

		rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/tasks", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var body []TaskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Len(t, body, 2)
		assert.Equal(t, "a", body[0].Prompt)
		assert.Equal(t, "b", body[1].Prompt)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockTaskService{
			ListTasksFn: func(ctx context.Context) ([]domain.Task, error) {
				return nil, errors.New("boom")
			},
		}
		rec := doRequest(t, newTestRouter(svc), http.MethodGet, "/tasks", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	})
}

func TestTaskHandler_GetTaskEvents(t *testing.T) {
	t.Parallel()

	svc := &mocks.MockTaskService{
		GetEventsFn: func(ctx context.Context, id string) ([]domain.TaskEvent, error) {
			if id != fixedTaskID {
				return nil, service.ErrTaskNotFound
			}
			return []domain.TaskEvent{
				{Type: domain.EventTypeThinking, Content: "Thinking about the task...", Timestamp: fixedTime},
			}, nil
		},
	}
	router := newTestRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/tasks/"+fixedTaskID+"/events", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"type":"THINKING","content":"Thinking about the task...","timestamp":"2025-04-01T12:00:00Z"}]`,
		rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/tasks/unknown/events", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, rec.Body.String())
}

func TestTaskHandler_Health(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, newTestRouter(&mocks.MockTaskService{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
