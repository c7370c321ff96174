package backend

import (
	"strconv"

	"github.com/kbukum/logkit/mdc"
)

// CallerInfo identifies the source location of a log call.
type CallerInfo struct {
	File string
	Line int
	Func string
}

// Emit forwards a record to the configured sink unconditionally; threshold
// checks are the caller's responsibility. The record carries the logger
// name, the caller location and a snapshot of the emitting goroutine's
// diagnostic context.
func (l *Logger) Emit(level int, loc CallerInfo, msg string) {
	zl, withCaller := currentSink()
	e := zl.WithLevel(zerologLevel(level))
	if l.name != "" {
		e = e.Str("logger", l.name)
	}
	if withCaller && loc.File != "" {
		e = e.Str("caller", loc.File+":"+strconv.Itoa(loc.Line))
	}
	for k, v := range mdc.Snapshot() {
		e = e.Str(k, v)
	}
	e.Msg(msg)
}
