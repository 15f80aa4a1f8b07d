// Package shared holds HTTP helpers used by the api package and its
// middleware: JSON request decoding and validation, JSON and error
// responses, and the request trace ID.
package shared
