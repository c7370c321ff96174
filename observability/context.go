package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/logkit/log"
	"github.com/kbukum/logkit/mdc"
)

// TraceMDC copies the active span's trace and span ids from ctx into the
// calling goroutine's diagnostic context. Returns false when ctx carries no
// valid span context; the MDC is left untouched in that case.
func TraceMDC(ctx context.Context) bool {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return false
	}
	mdc.Put(log.FieldTraceID, sc.TraceID().String())
	mdc.Put(log.FieldSpanID, sc.SpanID().String())
	return true
}

// TraceMDCScope is like TraceMDC but restores the previous ids when the
// returned function is called:
//
//	end := observability.TraceMDCScope(ctx)
//	defer end()
func TraceMDCScope(ctx context.Context) func() {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return func() {}
	}
	ts := mdc.NewScope(log.FieldTraceID, sc.TraceID().String())
	ss := mdc.NewScope(log.FieldSpanID, sc.SpanID().String())
	return func() {
		ss.End()
		ts.End()
	}
}

// TraceInit returns an initializer for mdc.RegisterInit that seeds every
// goroutine with the ids of the span active when TraceInit was called.
// Useful for worker pools fanned out under one long-lived root span.
func TraceInit(ctx context.Context) func() {
	sc := trace.SpanContextFromContext(ctx)
	return func() {
		if !sc.IsValid() {
			return
		}
		mdc.Put(log.FieldTraceID, sc.TraceID().String())
		mdc.Put(log.FieldSpanID, sc.SpanID().String())
	}
}
