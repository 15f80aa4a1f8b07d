// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrEmptyPrompt is returned when a task is submitted without a prompt,
	// or with a prompt that contains only whitespace.
	ErrEmptyPrompt = errors.New("prompt is required")

	// ErrTaskNotFound is returned when a task ID is not known to the store.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTransition is returned when a status change would violate the
	// task lifecycle. Correct callers never trigger it.
	ErrInvalidTransition = errors.New("invalid task status transition")

	// ErrInvalidStatus is returned for a status value outside the lifecycle.
	// It is always wrapped together with ErrInvalidTransition.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrIDGeneration is returned when a fresh task identifier cannot be allocated.
	ErrIDGeneration = errors.New("failed to generate task ID")
)
