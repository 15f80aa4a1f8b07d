// Package gemini provides an implementation of the agent.Agent interface
// backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it forwards the task prompt
// verbatim to the configured model and returns the generated text, hiding
// the genai client from the rest of the application.
//
// Transient API failures are retried with exponential backoff and jitter.
// Blocked or empty responses are permanent and reported immediately. Every
// failure surfaces as an *agent.ExecutionError.
package gemini
