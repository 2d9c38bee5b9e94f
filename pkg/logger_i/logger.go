package logger_i

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	inner *slog.Logger
}

// Init wires the default slog logger. When logFile is non-empty the output is
// duplicated into a size-rotated file next to stdout.
func Init(level string, logFile string, debug bool) {
	options := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	if debug {
		options.Level = slog.LevelDebug
	}

	var out io.Writer = os.Stdout
	if logFile != "" {
		if dir := filepath.Dir(logFile); dir != "" && dir != "." {
			_ = os.MkdirAll(dir, 0750)
		}
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    20, //MB
			MaxBackups: 5,
			Compress:   true,
		})
	}

	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(out, options)
	} else {
		handler = slog.NewJSONHandler(out, options)
	}
	slog.SetDefault(slog.New(handler))
}

func NewLogger(section string) *Logger {
	return &Logger{
		inner: slog.Default().With("component", section),
	}
}

func (l *Logger) Info(msg string, args ...any) {
	l.inner.Info(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logLeveled(slog.LevelError, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logLeveled(slog.LevelWarn, msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logLeveled(slog.LevelDebug, msg, args...)
}

func (l *Logger) logLeveled(level slog.Level, msg string, args ...any) {
	if !l.inner.Enabled(context.Background(), level) {
		return
	}
	l.inner.Log(context.Background(), level, msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		inner: l.inner.With(args...),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
