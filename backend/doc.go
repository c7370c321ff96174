// Package backend implements the logging backend consumed by the log
// facade: a hierarchical registry of named loggers with level inheritance,
// zerolog-based sinks, and configuration from files or property text.
//
// Callers normally do not use this package directly; the log package wires
// configuration, per-goroutine readiness and the context stack on top of it.
package backend
