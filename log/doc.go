// Package log is the logging facade for logkit. It hands out named logger
// handles over the backend hierarchy, performs lazy one-time configuration,
// and runs the per-goroutine diagnostic-context replay before a goroutine's
// first record is emitted.
//
// # Configuration
//
// Nothing needs to be configured up front: the first emission installs a
// console sink at info, or applies the file named by the LOGKIT_CONFIG
// environment variable. Explicit configuration resets the backend first:
//
//	log.ConfigureFromProps("level=debug\nloggers.svc.worker=trace")
//
// # Usage
//
//	lg := log.GetLogger("svc.worker")
//	if lg.IsEnabledFor(log.DebugLevel) {
//		lg.Debugf("processed %d items", n)
//	}
package log
