// Package observability bridges OpenTelemetry trace context into the
// mapped diagnostic context, so records emitted inside a traced operation
// carry the trace and span ids without per-call plumbing.
package observability
