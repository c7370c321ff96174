package mdc

import (
	"sync"
)

// stores maps goroutine id to that goroutine's diagnostic context. Entries
// are created on first Put and live until Release is called from the owning
// goroutine.
var (
	storeMu sync.RWMutex
	stores  = make(map[uint64]map[string]string)
)

// Put places a key/value pair in the calling goroutine's diagnostic context.
// An existing mapping for the key is always overwritten, never merged.
// It returns the previous value for the key, or "" if there was none.
func Put(key, value string) string {
	gid := goroutineID()
	storeMu.Lock()
	defer storeMu.Unlock()
	m := stores[gid]
	if m == nil {
		m = make(map[string]string)
		stores[gid] = m
	}
	old := m[key]
	m[key] = value
	return old
}

// Get returns the value for key in the calling goroutine's diagnostic
// context and whether the key is present.
func Get(key string) (string, bool) {
	gid := goroutineID()
	storeMu.RLock()
	defer storeMu.RUnlock()
	v, ok := stores[gid][key]
	return v, ok
}

// Remove deletes key from the calling goroutine's diagnostic context.
func Remove(key string) {
	gid := goroutineID()
	storeMu.Lock()
	defer storeMu.Unlock()
	delete(stores[gid], key)
}

// Snapshot returns a copy of the calling goroutine's diagnostic context.
// The result is nil when the context is empty.
func Snapshot() map[string]string {
	gid := goroutineID()
	storeMu.RLock()
	defer storeMu.RUnlock()
	m := stores[gid]
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Release drops the calling goroutine's diagnostic context and its readiness
// mark. Long-lived worker pools should call it on goroutine teardown; a
// later emission on the same goroutine replays the registered initializers
// again. Goroutines that never call Release keep their entry for the process
// lifetime, matching thread-local storage semantics.
func Release() {
	gid := goroutineID()
	storeMu.Lock()
	delete(stores, gid)
	storeMu.Unlock()

	readyMu.Lock()
	delete(ready, gid)
	readyMu.Unlock()
}
