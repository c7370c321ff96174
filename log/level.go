package log

import (
	"github.com/kbukum/logkit/backend"
)

// Severity levels, re-exported from the backend scale. Ascending severity:
// trace < debug < info < verbose < warn < error < fatal.
const (
	TraceLevel   = backend.TraceLevel
	DebugLevel   = backend.DebugLevel
	InfoLevel    = backend.InfoLevel
	VerboseLevel = backend.VerboseLevel
	WarnLevel    = backend.WarnLevel
	ErrorLevel   = backend.ErrorLevel
	FatalLevel   = backend.FatalLevel

	// LevelUnset is returned by Level for loggers without an explicit
	// threshold of their own.
	LevelUnset = backend.LevelUnset
)

// ParseLevel converts a level name to its numeric value (case-insensitive).
func ParseLevel(name string) (int, error) { return backend.ParseLevel(name) }

// LevelName returns the canonical name for a numeric level.
func LevelName(level int) string { return backend.LevelName(level) }
