// Package middleware provides Gin middleware that wires HTTP requests into
// the logging facade: request-id propagation through the diagnostic context
// and access logging at status-dependent levels.
package middleware
