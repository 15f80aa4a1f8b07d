package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/agent-tasks/internal/agent"
)

// MockAgent implements agent.Agent for testing
type MockAgent struct {
	// RunFn allows test cases to mock the Run behavior
	RunFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Result string
	Err    error

	// Call tracking for verification
	RunCalls struct {
		// mu protects the call tracking state for concurrent workers
		mu sync.Mutex

		// Prompts contains all prompts passed to Run calls
		Prompts []string
	}
}

var _ agent.Agent = (*MockAgent)(nil)

// Run implements the agent.Agent interface
func (m *MockAgent) Run(ctx context.Context, prompt string) (string, error) {
	m.RunCalls.mu.Lock()
	m.RunCalls.Prompts = append(m.RunCalls.Prompts, prompt)
	m.RunCalls.mu.Unlock()

	if m.RunFn != nil {
		return m.RunFn(ctx, prompt)
	}
	return m.Result, m.Err
}

// Calls returns a copy of the prompts Run has received so far.
func (m *MockAgent) Calls() []string {
	m.RunCalls.mu.Lock()
	defer m.RunCalls.mu.Unlock()
	return append([]string(nil), m.RunCalls.Prompts...)
}

// NewMockAgentWithResult creates a MockAgent that answers every prompt with result
func NewMockAgentWithResult(result string) *MockAgent {
	return &MockAgent{Result: result}
}

// NewMockAgentWithError creates a MockAgent that fails every invocation with err
func NewMockAgentWithError(err error) *MockAgent {
	return &MockAgent{Err: err}
}

// NewBlockingMockAgent creates a MockAgent whose Run waits until release is
// closed or ctx is done. Useful for holding workers busy.
func NewBlockingMockAgent(release <-chan struct{}) *MockAgent {
	return &MockAgent{
		RunFn: func(ctx context.Context, prompt string) (string, error) {
			select {
			case <-release:
				return "done", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		},
	}
}
