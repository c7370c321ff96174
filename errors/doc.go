// Package errors provides structured error types for logkit.
// Errors carry a stable code, a human-readable message, optional details,
// and an optional wrapped cause compatible with errors.Is and errors.As.
package errors
