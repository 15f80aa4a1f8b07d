package service

import (
	"errors"

	"github.com/phrazzld/agent-tasks/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrEmptyPrompt indicates a submission without a usable prompt.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyPrompt = domain.ErrEmptyPrompt

	// ErrTaskNotFound indicates the requested task does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = domain.ErrTaskNotFound

	// ErrServiceBusy indicates no execution slot was available; nothing was created.
	// API layer should map this to HTTP 503 Service Unavailable.
	ErrServiceBusy = errors.New("service is busy")
)
