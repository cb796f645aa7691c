package monitoring

import "log"

// Logf is the package-level diagnostic logger, defaulting to log.Printf.
// Library packages log through it so tests and embedders can redirect or
// mute diagnostics without touching the global logger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
