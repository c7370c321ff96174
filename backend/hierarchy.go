package backend

import (
	"strings"
	"sync"
)

// Logger is a node in the hierarchical logger registry. Nodes are created
// on demand by GetLogger, cached for the process lifetime, and carry only a
// name and an optional explicit level; everything else is inherited.
type Logger struct {
	name   string
	parent *Logger
	level  int // guarded by reg.mu
}

type loggerRegistry struct {
	mu    sync.RWMutex
	nodes map[string]*Logger
	root  *Logger
}

var reg = newRegistry()

func newRegistry() *loggerRegistry {
	root := &Logger{name: "", level: LevelUnset}
	return &loggerRegistry{
		nodes: map[string]*Logger{"": root},
		root:  root,
	}
}

// Root returns the root logger. Its name is the empty string.
func Root() *Logger { return reg.root }

// GetLogger returns the logger for a dotted name, creating it and any
// missing ancestors. Loggers for the same name are the same node.
func GetLogger(name string) *Logger {
	reg.mu.RLock()
	n := reg.nodes[name]
	reg.mu.RUnlock()
	if n != nil {
		return n
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.lookupLocked(name)
}

func (r *loggerRegistry) lookupLocked(name string) *Logger {
	if n, ok := r.nodes[name]; ok {
		return n
	}
	parentName := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		parentName = name[:i]
	}
	n := &Logger{
		name:   name,
		parent: r.lookupLocked(parentName),
		level:  LevelUnset,
	}
	r.nodes[name] = n
	return n
}

// Name returns the logger's dotted name; the root logger reports "".
func (l *Logger) Name() string { return l.name }

// SetLevel sets an explicit threshold on this logger. Descendants without
// their own level inherit it.
func (l *Logger) SetLevel(level int) {
	reg.mu.Lock()
	l.level = level
	reg.mu.Unlock()
}

// Level returns the logger's own threshold, or LevelUnset when none was
// set explicitly. Use EffectiveLevel for the inherited threshold.
func (l *Logger) Level() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return l.level
}

// EffectiveLevel returns the logger's own threshold if set, else the
// nearest ancestor's. With nothing set anywhere the hierarchy behaves as if
// the root were at debug, which is the post-reset state.
func (l *Logger) EffectiveLevel() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	for n := l; n != nil; n = n.parent {
		if n.level != LevelUnset {
			return n.level
		}
	}
	return DebugLevel
}

// IsEnabledFor reports whether a record at the given level would pass this
// logger's effective threshold.
func (l *Logger) IsEnabledFor(level int) bool {
	return l.EffectiveLevel() <= level
}

// resetLevels clears the explicit level of every known logger, root
// included. The nodes themselves survive.
func resetLevels() {
	reg.mu.Lock()
	for _, n := range reg.nodes {
		n.level = LevelUnset
	}
	reg.mu.Unlock()
}
