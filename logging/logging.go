// Package logging supplies the single shared, nil-safe logger convention
// the rest of the module follows: every stage entry point that can emit a
// warning takes an explicit *zap.SugaredLogger parameter rather than
// reaching for a package-level global, and a nil logger silently falls back
// to a no-op so callers that don't care about diagnostics never have to
// construct one.
package logging

import "go.uber.org/zap"

var noop = zap.NewNop().Sugar()

// Safe returns logger, or a no-op *zap.SugaredLogger if logger is nil.
func Safe(logger *zap.SugaredLogger) *zap.SugaredLogger {
	if logger == nil {
		return noop
	}
	return logger
}
