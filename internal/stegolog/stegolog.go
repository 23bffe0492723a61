// Package stegolog wraps charmbracelet/log for the CLI and evaluation
// pipeline's diagnostic output, carrying forward the teacher's
// debug-closure shim so packages that only want a printf-shaped hook
// (no direct charmbracelet/log dependency) can still log through it.
package stegolog

import (
	"os"

	"github.com/charmbracelet/log"
)

// base is the process-wide logger; New derives scoped loggers from it
// so every subsystem carries a consistent prefix/time format.
var base = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05",
})

// SetDebug toggles verbose logging, mirroring the teacher's --debug
// flag: off by default, debug-level once the CLI requests it.
func SetDebug(enabled bool) {
	if enabled {
		base.SetLevel(log.DebugLevel)
		return
	}
	base.SetLevel(log.InfoLevel)
}

// New returns a logger scoped to a subsystem name, e.g. stegolog.New("eval").
func New(subsystem string) *log.Logger {
	return base.WithPrefix(subsystem)
}

// DebugFunc adapts a *log.Logger to the printf-shaped closure the
// evaluation pipeline and older call sites expect, so a single
// charmbracelet/log.Logger can feed both styles.
func DebugFunc(l *log.Logger) func(format string, args ...any) {
	return func(format string, args ...any) {
		l.Debugf(format, args...)
	}
}
