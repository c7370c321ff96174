package log

// Standard diagnostic-context key constants, shared by the middleware and
// observability packages so records stay uniform across integrations.
const (
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
	FieldRequestID = "request_id"
	FieldSessionID = "session_id"
	FieldUserID    = "user_id"
)
