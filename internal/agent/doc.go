// Package agent defines the boundary between the task executor and the
// engine that actually fulfils a prompt.
//
// The executor treats an Agent as opaque: it hands over the prompt, waits
// for a textual result under a bounded context, and records either the
// result or the failure. Failures are reported as *ExecutionError so callers
// can distinguish an agent that ran and failed from a cancelled context.
//
// Two implementations ship with the service: LocalAgent in this package,
// which needs no external dependencies, and the Gemini-backed agent in
// internal/platform/gemini.
package agent
