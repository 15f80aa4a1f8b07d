package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/agent-tasks/internal/domain"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity, such as a task ID collision.
	ErrDuplicate = errors.New("entity already exists")

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	// It matches both ErrNotFound and domain.ErrTaskNotFound.
	ErrTaskNotFound = fmt.Errorf("%w: %w", ErrNotFound, domain.ErrTaskNotFound)
)
