package imagebox

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/go-logr/logr"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
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

// SetLogger configures the logger for imagebox and its sub-packages.
// By default imagebox produces no log output. Pass nil to restore that.
//
// Log levels used:
//   - [slog.LevelDebug]: layout results, alignment resolution, owner flushes
//   - [slog.LevelWarn]: degenerate paint input that was skipped
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// SetLogrLogger routes imagebox logging to a logr.Logger.
// A zero logr.Logger restores the silent default.
func SetLogrLogger(l logr.Logger) {
	if l.GetSink() == nil {
		SetLogger(nil)
		return
	}
	SetLogger(slog.New(logr.ToSlogHandler(l)))
}

// Logger returns the current logger. Sub-packages (raster, recording) call
// this to share one configuration. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
