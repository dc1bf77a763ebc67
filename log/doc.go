// Package log provides a simple, leveled logging interface for the warmpath engine.
//
// The engine never fails silently: anomalies that are recovered internally
// (corrupt cache entries, probability fallbacks for over-long routes, the
// never-none invariant guard) are reported through this package so operators
// can see them without the engine surfacing them as user errors.
//
// # Log Levels
//
// Five levels in order of increasing severity:
//
//   - LogLevelDebug: Detailed debugging information for development
//   - LogLevelInfo: General informational messages about normal operation
//   - LogLevelWarn: Warning messages for potentially problematic situations
//   - LogLevelError: Error messages for failures that need attention
//   - LogLevelNone: Disables all logging output
//
// # Example Usage
//
//	logger := log.NewDefaultLogger(log.LogLevelDebug)
//	logger.Debug("weighted search start: %s -> %s", sourceID, targetID)
//
// Or globally:
//
//	log.SetLogLevel(log.LogLevelDebug)
//	log.Warn("cache entry for %s is corrupt, purging", targetID)
//
// A kataras/golog adapter is provided for applications already using golog:
//
//	logger := log.NewGologLogger(golog.Default)
//	log.SetDefaultLogger(logger)
package log
