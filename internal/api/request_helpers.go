package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TaskIDParam is the chi URL parameter holding the task ID.
const TaskIDParam = "id"

// getTaskID extracts the task ID from the URL path parameters.
// The value is used verbatim; unknown or malformed IDs are left to the
// service, which reports them as not found.
func getTaskID(r *http.Request) string {
	return chi.URLParam(r, TaskIDParam)
}
