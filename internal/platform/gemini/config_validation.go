package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/agent-tasks/internal/config"
)

// validateConfig checks the settings the Gemini agent cannot run without.
//
// Parameters:
//   - ctx: Context for logging
//   - logger: Logger for recording validation results
//   - cfg: The LLM configuration to validate
//
// Returns:
//   - An error wrapping ErrInvalidConfig if validation fails, nil otherwise
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key")
		return fmt.Errorf("%w: GeminiAPIKey cannot be empty", ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing Gemini model name")
		return fmt.Errorf("%w: ModelName cannot be empty", ErrInvalidConfig)
	}

	if cfg.MaxRetries < 0 {
		return fmt.Errorf("%w: MaxRetries cannot be negative (got %d)", ErrInvalidConfig, cfg.MaxRetries)
	}

	if cfg.RetryDelaySeconds < 0 {
		return fmt.Errorf("%w: RetryDelaySeconds cannot be negative (got %d)",
			ErrInvalidConfig, cfg.RetryDelaySeconds)
	}

	return nil
}
