package vec4

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
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

// SetLogger configures the logger used by vec4. By default nothing is logged.
// Pass nil to restore the silent default. Safe for concurrent use.
//
// Log levels used by vec4:
//   - [slog.LevelDebug]: which backend supplies each operation
//   - [slog.LevelInfo]: the resolved backend set
//   - [slog.LevelWarn]: SIMD disabled through VEC4_NO_SIMD
//
// Backend selection happens once, on the first vector operation, so the
// logger must be installed before that to see the dispatch messages.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
