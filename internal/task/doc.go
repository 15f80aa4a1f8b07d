// Package task manages background execution of submitted tasks.
// It provides a bounded queue with slot reservation, a fixed pool of
// workers, and the Executor that drives each task through its lifecycle
// by invoking the configured agent and recording events in the store.
package task
