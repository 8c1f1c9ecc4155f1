// Package logging provides structured logging for btconf.
//
// This package wraps a zap logger with package-level helpers so the config
// store, the integrity checker and the CLI share one logger without passing
// it around.
//
// # Log Levels
//
//   - Debug: parser decisions (skipped lines, merged sections)
//   - Info: loads, saves, checksum writes
//   - Warn: recoverable problems (missing checksum sidecar)
//   - Error: failed saves
//
// # Configuration
//
// Logging is silent by default so CLI output stays clean. Enable it with the
// --log-level flag or the BTCONF_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Output goes to stderr in console format.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
