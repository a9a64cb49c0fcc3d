// Package logging holds the process-wide logger used by every glquad package.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs l as the logger for all packages. By default nothing is
// logged; pass nil to restore that.
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
