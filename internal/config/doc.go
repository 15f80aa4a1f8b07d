// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, environment
// variables). Environment variables use the AGENTTASKS_ prefix with dots
// replaced by underscores, for example AGENTTASKS_TASK_WORKER_COUNT.
package config
