// Package mocks provides hand-written test doubles for the agent and the task
// service. Each mock records its calls and lets a test override behavior with
// a function field.
package mocks
