package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/agent-tasks/internal/agent"
	"github.com/phrazzld/agent-tasks/internal/config"
	"github.com/phrazzld/agent-tasks/internal/redact"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by the agent.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiAgent implements agent.Agent using the Gemini API.
type GeminiAgent struct {
	logger    *slog.Logger
	models    contentGenerator
	modelName string

	maxRetries int
	baseDelay  time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand
}

var _ agent.Agent = (*GeminiAgent)(nil)

// NewGeminiAgent creates a Gemini-backed agent.
//
// Parameters:
//   - ctx: Context used while constructing the genai client
//   - logger: Structured logger; nil falls back to slog.Default()
//   - cfg: LLM configuration with API key, model name and retry settings
//
// Returns:
//   - A ready GeminiAgent
//   - An error if the configuration is invalid or the client cannot be created
func NewGeminiAgent(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiAgent, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return newAgent(logger, client.Models, cfg), nil
}

func newAgent(logger *slog.Logger, models contentGenerator, cfg config.LLMConfig) *GeminiAgent {
	return &GeminiAgent{
		logger:     logger.With("component", "gemini_agent", "model", cfg.ModelName),
		models:     models,
		modelName:  cfg.ModelName,
		maxRetries: cfg.MaxRetries,
		baseDelay:  time.Duration(cfg.RetryDelaySeconds) * time.Second,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run sends the prompt to the model and returns the generated text.
func (a *GeminiAgent) Run(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		attemptNum := attempt + 1

		resp, err := a.models.GenerateContent(ctx, a.modelName, contents, nil)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", agent.NewExecutionError("agent invocation interrupted", ctxErr)
			}

			lastErr = err
			a.logger.WarnContext(ctx, "Gemini API call failed",
				"attempt", attemptNum,
				"error", redact.Error(err))
		} else {
			text, err := extractText(resp)
			if err != nil {
				a.logger.WarnContext(ctx, "Permanent error occurred, not retrying",
					"attempt", attemptNum,
					"error", err)
				return "", agent.NewExecutionError("gemini returned no usable answer", err)
			}

			a.logger.DebugContext(ctx, "Gemini API call successful", "attempt", attemptNum)
			return text, nil
		}

		if attempt == a.maxRetries {
			break
		}

		delay := a.backoff(attempt)
		a.logger.InfoContext(ctx, "Retrying after delay",
			"attempt", attemptNum,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", agent.NewExecutionError("agent invocation interrupted", ctx.Err())
		}
	}

	return "", agent.NewExecutionError(
		fmt.Sprintf("gemini request failed after %d attempts", a.maxRetries+1),
		fmt.Errorf("%w: %w", ErrTransientFailure, lastErr),
	)
}

// backoff returns baseDelay * 2^attempt scaled by a jitter factor in [0.5, 1.0).
func (a *GeminiAgent) backoff(attempt int) time.Duration {
	a.rngMu.Lock()
	jitter := 0.5 + a.rng.Float64()*0.5
	a.rngMu.Unlock()

	return time.Duration(float64(a.baseDelay) * math.Pow(2, float64(attempt)) * jitter)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrEmptyResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrEmptyResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked", ErrContentBlocked)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: no text parts in response", ErrEmptyResponse)
	}

	return text, nil
}
