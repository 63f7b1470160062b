// Package monitoring routes the progress messages of an experiment: the
// parameter banner, per-run percolation outcomes, non-integer Euler
// characteristic warnings, schema migrations and written output files.
package monitoring

import "log"

// Logf receives every progress message. It writes through log.Printf until
// SetLogger installs another sink.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger installs f as the progress sink; nil discards all messages, which
// long Monte Carlo runs and tests use to silence per-run output.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
