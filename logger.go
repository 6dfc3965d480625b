package colorscape

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Gradient construction checks Enabled
// before building attributes, so the silent default costs nothing.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by NewGradient and the colorscape command.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes colorscape diagnostics to l. Until it is called nothing
// is logged; nil restores that state. It may be called while gradients are
// being built on other goroutines.
//
// Log levels used by colorscape:
//   - [slog.LevelDebug]: gradient construction (stop count, re-sorting)
//   - [slog.LevelWarn]: dropped gradient stops
//
// Color conversion and interpolation never log.
//
// Example:
//
//	colorscape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or the silent default.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
