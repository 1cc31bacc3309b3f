package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

const (
	LevelError int = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace

	calldepth = 3
)

// slog has no trace level
const slogLevelTrace = slog.LevelDebug - 4

var (
	level  = LevelError
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// LevelError = 0
// LevelWarn = 1
// LevelInfo  = 2
// LevelDebug  = 3
// LevelTrace = 4
func SetLevel(l int) {
	level = l
}

// SetOutput directs all log output to w. Colors are only used when w is a
// terminal
func SetOutput(w io.Writer) {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	logger = slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:  true,
		Level:      slogLevelTrace,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == slogLevelTrace {
					return tint.Attr(13, slog.String(a.Key, "TRC"))
				}
			}
			return a
		},
	}))
}

// ParseLevel turns a level name into one of the Level constants
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelError, fmt.Errorf("unknown log level %q", s)
	}
}

func output(l slog.Level, message string, args ...any) {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	ctx := context.Background()
	h := logger.Handler()
	if !h.Enabled(ctx, l) {
		return
	}
	// skip runtime.Callers, output and the exported level function
	var pcs [1]uintptr
	runtime.Callers(calldepth, pcs[:])
	r := slog.NewRecord(time.Now(), l, message, pcs[0])
	_ = h.Handle(ctx, r)
}

func Trace(format string, args ...any) {
	if level < LevelTrace {
		return
	}
	output(slogLevelTrace, format, args...)
}

func Debug(format string, args ...any) {
	if level < LevelDebug {
		return
	}
	output(slog.LevelDebug, format, args...)
}

func Info(format string, args ...any) {
	if level < LevelInfo {
		return
	}
	output(slog.LevelInfo, format, args...)
}

func Warn(format string, args ...any) {
	if level < LevelWarn {
		return
	}
	output(slog.LevelWarn, format, args...)
}

func Error(format string, args ...any) {
	if level < LevelError {
		return
	}
	output(slog.LevelError, format, args...)
}
