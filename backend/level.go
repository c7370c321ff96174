package backend

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kbukum/logkit/errors"
)

// Severity levels on an ascending integer scale. The spacing follows the
// log4j convention so thresholds configured for one backend remain
// meaningful for another; VERBOSE sits between INFO and WARN.
const (
	TraceLevel   = 5000
	DebugLevel   = 10000
	InfoLevel    = 20000
	VerboseLevel = 25000
	WarnLevel    = 30000
	ErrorLevel   = 40000
	FatalLevel   = 50000
)

// LevelUnset is the sentinel returned by Level when a logger has no
// explicit level of its own.
const LevelUnset = -1

var levelNames = map[string]int{
	"trace":   TraceLevel,
	"debug":   DebugLevel,
	"info":    InfoLevel,
	"verbose": VerboseLevel,
	"warn":    WarnLevel,
	"error":   ErrorLevel,
	"fatal":   FatalLevel,
}

// ParseLevel converts a level name to its numeric value (case-insensitive).
func ParseLevel(name string) (int, error) {
	if lvl, ok := levelNames[strings.ToLower(name)]; ok {
		return lvl, nil
	}
	return LevelUnset, errors.InvalidInput("level", "unknown level name: "+name)
}

// LevelName returns the canonical name for a numeric level. Values that do
// not sit exactly on the scale are formatted as their number.
func LevelName(level int) string {
	switch level {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case VerboseLevel:
		return "verbose"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FatalLevel:
		return "fatal"
	case LevelUnset:
		return "unset"
	}
	return strconv.Itoa(level)
}

// zerologLevel maps a numeric level onto zerolog's fixed scale. VERBOSE has
// no zerolog counterpart and folds into info.
func zerologLevel(level int) zerolog.Level {
	switch {
	case level < DebugLevel:
		return zerolog.TraceLevel
	case level < InfoLevel:
		return zerolog.DebugLevel
	case level < WarnLevel:
		return zerolog.InfoLevel
	case level < ErrorLevel:
		return zerolog.WarnLevel
	case level < FatalLevel:
		return zerolog.ErrorLevel
	}
	return zerolog.FatalLevel
}
