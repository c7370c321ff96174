package log

import (
	"github.com/kbukum/logkit/mdc"
)

// MDC places a key/value pair in the calling goroutine's mapped diagnostic
// context; the value appears on every record the goroutine emits. Existing
// mappings are overwritten, never merged. Returns the previous value, or ""
// if the key was absent.
func MDC(key, value string) string {
	return mdc.Put(key, value)
}

// MDCGet returns the value for key in the calling goroutine's diagnostic
// context, or "" when absent.
func MDCGet(key string) string {
	v, _ := mdc.Get(key)
	return v
}

// MDCRemove deletes key from the calling goroutine's diagnostic context.
func MDCRemove(key string) {
	mdc.Remove(key)
}

// MDCRegisterInit registers a function that populates a goroutine's
// diagnostic context. It runs immediately on the calling goroutine and is
// replayed on every other goroutine's first emission. Goroutines that
// already emitted never replay it. The return value is an opaque
// acknowledgment.
func MDCRegisterInit(fn func()) int {
	return mdc.RegisterInit(fn)
}
