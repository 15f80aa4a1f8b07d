// Package service contains the application use cases for task submission
// and polling. It orchestrates the task store and the executor so that
// delivery mechanisms (the HTTP API) never touch either directly.
//
// Key components:
//
// 1. TaskService:
//   - Validates prompts and admits work only when an execution slot is free
//   - Creates the PENDING task and hands it to the executor without blocking
//   - Serves read-only snapshots of tasks and their event logs
//
// 2. Error Handling:
//   - Expected conditions are sentinel errors (ErrEmptyPrompt, ErrTaskNotFound, ErrServiceBusy)
//   - Unexpected failures are wrapped in *TaskServiceError
//   - The API layer maps both to HTTP status codes
package service
