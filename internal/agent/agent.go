package agent

import (
	"context"
	"errors"
	"fmt"
)

// Agent executes a single natural-language prompt and returns its textual result.
type Agent interface {
	// Run executes the prompt.
	//
	// Parameters:
	//   - ctx: Bounds the invocation; implementations must return promptly once it is done
	//   - prompt: The task text exactly as submitted
	//
	// Returns:
	//   - The result text on success
	//   - An error, normally an *ExecutionError, on failure
	Run(ctx context.Context, prompt string) (string, error)
}

// Func adapts an ordinary function to the Agent interface.
type Func func(ctx context.Context, prompt string) (string, error)

// Run calls f(ctx, prompt).
func (f Func) Run(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ErrAgentFailed is the sentinel matched by every *ExecutionError.
var ErrAgentFailed = errors.New("agent execution failed")

// ExecutionError reports that an agent could not produce a result.
// Diagnostic is a human-readable description; it may contain sensitive
// detail and must be redacted before it leaves the process.
type ExecutionError struct {
	Diagnostic string
	Err        error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Diagnostic, e.Err)
	}
	return e.Diagnostic
}

// Unwrap returns the underlying cause.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Is makes every ExecutionError match ErrAgentFailed.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrAgentFailed
}

// NewExecutionError creates an ExecutionError with the given diagnostic and cause.
func NewExecutionError(diagnostic string, err error) *ExecutionError {
	return &ExecutionError{Diagnostic: diagnostic, Err: err}
}

// AlwaysFail returns an Agent that fails every invocation with the given diagnostic.
func AlwaysFail(diagnostic string) Agent {
	return Func(func(ctx context.Context, prompt string) (string, error) {
		return "", NewExecutionError(diagnostic, nil)
	})
}
