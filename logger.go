package predgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with predgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLimit adds a query limit field to the logger.
func (l *Logger) WithLimit(limit uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("limit", limit),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs index construction.
func (l *Logger) LogBuild(keys, depth int, duration time.Duration, err error) {
	if err != nil {
		l.Error("build failed",
			"keys", keys,
			"error", err,
		)
	} else {
		l.Info("index built",
			"keys", keys,
			"depth", depth,
			"duration", duration,
		)
	}
}

// LogPredecessor logs a single predecessor query.
func (l *Logger) LogPredecessor(limit, key uint64, err error) {
	if err != nil {
		l.Debug("predecessor query empty or failed",
			"limit", limit,
			"error", err,
		)
	} else {
		l.Debug("predecessor query completed",
			"limit", limit,
			"key", key,
		)
	}
}

// LogBatch logs a batch predecessor operation.
func (l *Logger) LogBatch(ctx context.Context, queries, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch predecessor failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch predecessor completed",
			"queries", queries,
			"found", found,
		)
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"op", op,
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot completed",
			"op", op,
			"name", name,
		)
	}
}
