package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

func logColors(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}

// NewLogger writes colored text to a terminal stdout and plain text otherwise.
// When logFile is set, output goes to a rotated file instead.
func NewLogger(debug bool, logFile string) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	if logFile != "" {
		return slog.New(slog.NewTextHandler(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		}, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(newConsoleHandler(os.Stdout, level))
}

func newConsoleHandler(out io.Writer, level slog.Level) slog.Handler {
	if !logColors(out) {
		return slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}

	return tint.NewHandler(out, &tint.Options{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if _, ok := attr.Value.Any().(error); attr.Key == "error" || ok {
				return tint.Attr(9, attr)
			}
			return attr
		},
		TimeFormat: time.RFC3339,
	})
}
