// Package mdc implements the mapped diagnostic context: a per-goroutine
// key/value store whose contents are attached to every emitted log record.
//
// Callers register initializers once, typically at startup:
//
//	mdc.RegisterInit(func() {
//		mdc.Put("instance_id", instanceID)
//	})
//
// The initializer runs immediately on the registering goroutine and is
// replayed on every other goroutine the first time it emits a record, so
// worker goroutines need no per-goroutine setup code.
package mdc
