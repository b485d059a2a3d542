package logger

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

var loggerKey = contextKey{}

// New builds the logger for a single invocation. It never replaces the
// process default; callers attach it to their context with WithLogger.
func New(w io.Writer, debug, verbose bool) *slog.Logger {
	level := slog.LevelWarn

	if debug {
		level = slog.LevelDebug
	} else if verbose {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	if debug {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(NewPrettyHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return Discard()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func With(ctx context.Context, args ...any) context.Context {
	l := FromContext(ctx).With(args...)
	return WithLogger(ctx, l)
}

func Debug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	FromContext(ctx).Error(msg, args...)
}
