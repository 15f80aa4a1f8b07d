// Package api handles incoming HTTP requests, request validation, and
// response formatting for the task service. It acts as an adapter between
// external clients and service.TaskService, translating HTTP concerns to
// service operations and service errors back to status codes.
package api
