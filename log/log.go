package log

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/kbukum/logkit/backend"
	"github.com/kbukum/logkit/mdc"
)

// Logger is a cheaply copyable handle to a named logger in the backend
// hierarchy. Handles for the same name are interchangeable. The zero value
// is a handle to the default logger.
type Logger struct {
	name string
	node *backend.Logger
}

// GetLogger returns the handle for a dotted logger name. The empty name
// resolves to the current default logger composed from the context stack,
// not necessarily the root.
func GetLogger(name string) Logger {
	if name == "" {
		return DefaultLogger()
	}
	return Logger{name: name, node: backend.GetLogger(name)}
}

// DefaultLogger returns the handle for the name currently composed by the
// context stack; with an empty stack that is the root logger. The name is
// resolved now, not when the handle is used, so push/pop after this call
// does not move the handle.
func DefaultLogger() Logger {
	name := DefaultLoggerName()
	return Logger{name: name, node: backend.GetLogger(name)}
}

// Name returns the handle's dotted name; the root logger reports "".
func (l Logger) Name() string { return l.name }

// Child returns a handle for a descendant of this logger. Leading dots and
// spaces in suffix are stripped; an empty remainder returns the receiver
// unchanged. For the root logger the trimmed suffix becomes the full name.
func (l Logger) Child(suffix string) Logger {
	trimmed := strings.TrimLeft(suffix, " .")
	if trimmed == "" {
		return l
	}
	if l.name == "" {
		return Logger{name: trimmed, node: backend.GetLogger(trimmed)}
	}
	return GetLogger(l.name + "." + trimmed)
}

// SetLevel sets an explicit threshold on this logger.
func (l Logger) SetLevel(level int) { l.resolve().SetLevel(level) }

// Level returns this logger's own threshold, or LevelUnset.
func (l Logger) Level() int { return l.resolve().Level() }

// EffectiveLevel returns this logger's threshold, inherited from the
// nearest ancestor when not set explicitly.
func (l Logger) EffectiveLevel() int { return l.resolve().EffectiveLevel() }

// IsEnabledFor reports whether a record at the given level would pass this
// logger's effective threshold.
func (l Logger) IsEnabledFor(level int) bool { return l.resolve().IsEnabledFor(level) }

// Log emits a pre-rendered message at the given level.
func (l Logger) Log(level int, msg string) { l.log(level, msg) }

// Logf formats and emits a message at the given level.
func (l Logger) Logf(level int, format string, args ...any) { l.logf(level, format, args...) }

// Trace logs a pre-rendered message at trace level.
func (l Logger) Trace(msg string) { l.log(TraceLevel, msg) }

// Tracef formats and logs a message at trace level.
func (l Logger) Tracef(format string, args ...any) { l.logf(TraceLevel, format, args...) }

// Debug logs a pre-rendered message at debug level.
func (l Logger) Debug(msg string) { l.log(DebugLevel, msg) }

// Debugf formats and logs a message at debug level.
func (l Logger) Debugf(format string, args ...any) { l.logf(DebugLevel, format, args...) }

// Info logs a pre-rendered message at info level.
func (l Logger) Info(msg string) { l.log(InfoLevel, msg) }

// Infof formats and logs a message at info level.
func (l Logger) Infof(format string, args ...any) { l.logf(InfoLevel, format, args...) }

// Verbose logs a pre-rendered message at verbose level.
func (l Logger) Verbose(msg string) { l.log(VerboseLevel, msg) }

// Verbosef formats and logs a message at verbose level.
func (l Logger) Verbosef(format string, args ...any) { l.logf(VerboseLevel, format, args...) }

// Warn logs a pre-rendered message at warn level.
func (l Logger) Warn(msg string) { l.log(WarnLevel, msg) }

// Warnf formats and logs a message at warn level.
func (l Logger) Warnf(format string, args ...any) { l.logf(WarnLevel, format, args...) }

// Error logs a pre-rendered message at error level.
func (l Logger) Error(msg string) { l.log(ErrorLevel, msg) }

// Errorf formats and logs a message at error level.
func (l Logger) Errorf(format string, args ...any) { l.logf(ErrorLevel, format, args...) }

// Fatal logs a pre-rendered message at fatal level. The process is not
// terminated; fatal only marks the record's severity.
func (l Logger) Fatal(msg string) { l.log(FatalLevel, msg) }

// Fatalf formats and logs a message at fatal level.
func (l Logger) Fatalf(format string, args ...any) { l.logf(FatalLevel, format, args...) }

// resolve returns the backend node, looking it up for zero-value handles.
func (l Logger) resolve() *backend.Logger {
	if l.node == nil {
		return backend.GetLogger(l.name)
	}
	return l.node
}

// callerSkip is the fixed number of frames between runtime.Caller inside
// callerInfo and the public entry point. Every exported emission method
// must sit exactly two frames above emit.
const callerSkip = 4

// log is the single emission funnel: configuration first, then the
// per-goroutine readiness gate, then the threshold check and the backend.
func (l Logger) log(level int, msg string) {
	ensureConfigured()
	mdc.EnsureReady()
	if !l.IsEnabledFor(level) {
		return
	}
	l.emit(level, msg)
}

func (l Logger) logf(level int, format string, args ...any) {
	ensureConfigured()
	mdc.EnsureReady()
	if !l.IsEnabledFor(level) {
		return
	}
	l.emit(level, fmt.Sprintf(format, args...))
}

func (l Logger) emit(level int, msg string) {
	l.resolve().Emit(level, callerInfo(callerSkip), msg)
}

func callerInfo(skip int) backend.CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return backend.CallerInfo{}
	}
	info := backend.CallerInfo{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		info.Func = fn.Name()
	}
	return info
}
