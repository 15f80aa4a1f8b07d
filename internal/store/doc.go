// Package store defines the task storage interface and its in-memory
// implementation. The store is the single owner of task state: every status
// change and event append goes through its linearizable operations, and
// readers only ever see fully applied mutations.
package store
