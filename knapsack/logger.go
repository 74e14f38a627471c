// SPDX-License-Identifier: MIT

package knapsack

// Logger is the informational sink used when Verbose is enabled.
// keysAndValues alternate key, value, as in zap's sugared API; a
// *zap.SugaredLogger satisfies Logger without an adapter.
type Logger interface {
	Infow(msg string, keysAndValues ...any)
}

type nopLogger struct{}

func (nopLogger) Infow(string, ...any) {}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger { return nopLogger{} }
