package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/agent-tasks/internal/api/shared"
	"github.com/phrazzld/agent-tasks/internal/service"
)

// User-facing error messages.
const (
	MsgPromptRequired  = "Prompt is required"
	MsgInvalidRequest  = "Invalid request format"
	MsgRequestTooLarge = "Request body too large"
	MsgTaskNotFound    = "Task not found"
	MsgServerBusy      = "Server is busy, try again later"
	MsgInternalError   = "Internal server error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyPrompt):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrServiceBusy):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyPrompt):
		return MsgPromptRequired
	case errors.Is(err, service.ErrTaskNotFound):
		return MsgTaskNotFound
	case errors.Is(err, service.ErrServiceBusy):
		return MsgServerBusy
	default:
		return MsgInternalError
	}
}

// HandleAPIError writes the status code and safe message for err and logs
// the redacted detail.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
