// Package logging builds the slog loggers used by the todo list API and
// todoctl, and carries the request-scoped logger in a context.
//
//	logger := logging.New("info", "json", os.Stderr, slog.String("service", "todolist-service"))
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).InfoContext(ctx, "adding todo item", slog.Int64("item_id", id))
//
// Error logs carry the operation name, the entity ids involved and the full
// error chain:
//
//	logger.ErrorContext(ctx, "request failed",
//	    slog.String("operation", "RegisterProgression"),
//	    slog.Int64("item_id", id),
//	    slog.Any("error", err),
//	)
//
// Every handler redacts credentials through masq before writing; see
// SensitiveHeaders.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing to w.
//
// level is one of debug, info, warn or error, case-insensitive; anything
// else means info. format "text" selects the text handler and any other
// value JSON. Debug loggers include the source location. attrs are added to
// every record.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
