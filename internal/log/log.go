// ABOUTME: Leveled logging over log/slog for the CLI and viewer
// ABOUTME: Global level via SetLevel; writes to stderr so it never mixes with rendered rows on stdout

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  slog.LevelVar
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(LevelInfo)
	SetOutput(os.Stderr)
}

// SetOutput redirects log output. Used by tests and by the viewer, which
// must not write to the terminal it owns.
func SetOutput(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: &level})
	logger.Store(slog.New(h))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel maps a config or flag string to a level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return LevelInfo
	}
	return l
}

func logf(l slog.Level, format string, args ...any) {
	lg := logger.Load()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }
