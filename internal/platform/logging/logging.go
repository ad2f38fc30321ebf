// Package logging builds the service's slog logger and carries a
// request-scoped logger through context.
//
// Middleware stores a logger enriched with request_id and correlation_id:
//
//	ctx = logging.WithLogger(ctx, logger.With(...))
//
// Handlers bind the todo being addressed for everything downstream:
//
//	ctx = logging.WithGlobalID(ctx, id)
//
// Services and storage adapters log through Or, or ForTodo when the line is
// about one todo, so that they pick up the request attributes when present
// and fall back to their injected logger:
//
//	logging.ForTodo(ctx, s.logger, id).ErrorContext(ctx, "failed to update todo",
//	    slog.String("operation", "Transition"),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New creates the service logger. Level is one of debug, info, warn or error
// (case insensitive; anything else means info). Format FormatText selects
// the text handler and every other value selects JSON. Debug level adds
// source locations. Every handler redacts credentials via masq.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns a new context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context logger, or slog.Default() when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	return Or(ctx, slog.Default())
}

// Or returns the context logger, or fallback when none is set.
func Or(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return fallback
}

// With returns a context whose logger (or slog.Default()) carries args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// GlobalIDKey is the log attribute naming the todo a line is about.
const GlobalIDKey = "global_id"

type globalIDKey struct{}

// WithGlobalID binds globalID to the context logger. ForTodo then leaves the
// attribute off for the same todo.
func WithGlobalID(ctx context.Context, globalID string) context.Context {
	ctx = With(ctx, slog.String(GlobalIDKey, globalID))
	return context.WithValue(ctx, globalIDKey{}, globalID)
}

// ForTodo returns the context logger, or fallback, carrying global_id exactly
// once.
func ForTodo(ctx context.Context, fallback *slog.Logger, globalID string) *slog.Logger {
	logger := Or(ctx, fallback)
	if bound, _ := ctx.Value(globalIDKey{}).(string); bound == globalID {
		return logger
	}
	return logger.With(slog.String(GlobalIDKey, globalID))
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		_ = lvl.UnmarshalText([]byte(level))
		return lvl
	default:
		return slog.LevelInfo
	}
}
