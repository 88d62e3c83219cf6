package panphon

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with panphon-specific context.
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

// LogLoad logs a feature table load.
func (l *Logger) LogLoad(ctx context.Context, source string, segments, features int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "table loaded",
			"source", source,
			"segments", segments,
			"features", features,
		)
	}
}

// LogLookup logs a single-symbol lookup.
func (l *Logger) LogLookup(ctx context.Context, symbol string, found bool) {
	l.DebugContext(ctx, "segment lookup",
		"symbol", symbol,
		"found", found,
	)
}

// LogSegmentation logs a word segmentation.
func (l *Logger) LogSegmentation(ctx context.Context, word string, segments int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "segmentation failed",
			"word", word,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "segmentation completed",
			"word", word,
			"segments", segments,
		)
	}
}

// LogMatch logs a feature-specification query.
func (l *Logger) LogMatch(ctx context.Context, features, results int) {
	l.DebugContext(ctx, "feature match completed",
		"features", features,
		"results", results,
	)
}
