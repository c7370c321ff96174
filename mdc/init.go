package mdc

import (
	"sync"
)

// initFns is the append-only list of registered initializers, replayed in
// registration order on each goroutine's first emission.
var (
	initMu  sync.Mutex
	initFns []func()
)

// ready records which goroutines have passed their one-time gate.
var (
	readyMu sync.Mutex
	ready   = make(map[uint64]struct{})
)

// RegisterInit registers an initializer that populates the diagnostic
// context of a goroutine. The function is invoked immediately on the
// registering goroutine, so that goroutine never depends on replay, then
// appended to the registry for replay on other goroutines' first emission.
//
// Goroutines that already emitted a record before registration never see
// this initializer; only goroutines that have not yet passed their gate, or
// are started afterwards, replay it.
//
// The returned value is an opaque acknowledgment.
func RegisterInit(fn func()) int {
	initMu.Lock()
	defer initMu.Unlock()
	fn()
	initFns = append(initFns, fn)
	return 1
}

// EnsureReady runs the one-time per-goroutine gate. The first call on a
// goroutine marks it ready and replays every registered initializer in
// registration order; later calls are no-ops.
//
// A panicking initializer propagates to the caller and aborts the remaining
// replay for this goroutine only; the gate stays set.
func EnsureReady() {
	gid := goroutineID()

	readyMu.Lock()
	_, seen := ready[gid]
	if !seen {
		ready[gid] = struct{}{}
	}
	readyMu.Unlock()
	if seen {
		return
	}

	initMu.Lock()
	defer initMu.Unlock()
	for _, fn := range initFns {
		fn()
	}
}
