package log

import (
	"strings"

	"github.com/kbukum/logkit/errors"
)

// separator joins context segments into dotted logger names.
const separator = "."

// contextStack composes the default logger name. It is shared by every
// goroutine and deliberately unsynchronized: mutate it from one goroutine
// (typically a driver loop or startup code), or bring your own
// synchronization.
var contextStack []string

// PushContext appends a name segment to the context stack. The segment must
// be non-empty and must not contain the '.' separator.
func PushContext(segment string) error {
	if segment == "" {
		return errors.InvalidInput("segment", "context segment must not be empty")
	}
	if strings.Contains(segment, separator) {
		return errors.InvalidInput("segment", "context segment must not contain '"+separator+"'")
	}
	contextStack = append(contextStack, segment)
	return nil
}

// PopContext removes the most recently pushed segment. Popping an empty
// stack is a no-op.
func PopContext() {
	if len(contextStack) == 0 {
		return
	}
	contextStack = contextStack[:len(contextStack)-1]
}

// DefaultLoggerName returns the segments joined in push order. An empty
// stack yields "", the root logger.
func DefaultLoggerName() string {
	return strings.Join(contextStack, separator)
}

// Context is a stack-discipline guard around one pushed segment. End pops
// it; deferring End guarantees the pop on every exit path.
//
//	ctx, err := log.NewContext("worker")
//	if err != nil { ... }
//	defer ctx.End()
type Context struct {
	done bool
}

// NewContext pushes a segment and returns the guard that pops it.
func NewContext(segment string) (*Context, error) {
	if err := PushContext(segment); err != nil {
		return nil, err
	}
	return &Context{}, nil
}

// End pops the guarded segment. Calling End more than once is a no-op.
func (c *Context) End() {
	if c == nil || c.done {
		return
	}
	c.done = true
	PopContext()
}
