package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
//
// The "auto" format picks the colored tint handler when w is a terminal and
// the plain text handler otherwise.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	switch formatStr {
	case LogFormatJSON:
		handler = slog.NewJSONHandler(w, handlerOpts)
	case LogFormatText:
		handler = slog.NewTextHandler(w, handlerOpts)
	case LogFormatTint:
		handler = newTintHandler(w, level, !isTerminal(w))
	default:
		if isTerminal(w) {
			handler = newTintHandler(w, level, false)
		} else {
			handler = slog.NewTextHandler(w, handlerOpts)
		}
	}

	return slog.New(handler)
}

func newTintHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
