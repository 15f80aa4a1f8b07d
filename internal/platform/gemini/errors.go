package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrInvalidConfig is returned when the agent configuration is unusable.
	ErrInvalidConfig = errors.New("invalid gemini agent configuration")

	// ErrContentBlocked is returned when the model refuses the prompt or its answer.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrTransientFailure is returned when retries are exhausted.
	ErrTransientFailure = errors.New("transient error calling language model")
)
