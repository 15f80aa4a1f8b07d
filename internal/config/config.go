package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Task   TaskConfig   `mapstructure:"task"   validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// TaskConfig contains settings for background task execution.
type TaskConfig struct {
	// WorkerCount bounds how many agent invocations run at once
	WorkerCount int `mapstructure:"worker_count" validate:"gt=0"`

	// QueueSize bounds how many accepted tasks may wait for a worker;
	// submissions beyond it are rejected
	QueueSize int `mapstructure:"queue_size" validate:"gt=0"`

	// AgentTimeoutSeconds bounds a single agent invocation
	AgentTimeoutSeconds int `mapstructure:"agent_timeout_seconds" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
// The Gemini agent is used when GeminiAPIKey is set; otherwise the local agent runs.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name"          validate:"required"`
	MaxRetries        int    `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}
