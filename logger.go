package fixedvec

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with fixedvec-specific context.
// This provides structured logging with consistent field names.
//
// The Vector type itself never logs; the batch package and the CLI do.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// A nil w writes to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil w writes to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithISA adds the active kernel ISA to the logger.
func (l *Logger) WithISA(isa string) *Logger {
	return &Logger{
		Logger: l.Logger.With("isa", isa),
	}
}

// LogBatch logs a batch operation over count vectors.
func (l *Logger) LogBatch(ctx context.Context, op string, count int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch failed",
			"op", op,
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch completed",
			"op", op,
			"count", count,
			"elapsed", elapsed,
		)
	}
}

// LogBench logs one benchmark measurement.
func (l *Logger) LogBench(ctx context.Context, op string, iterations int, elapsed time.Duration) {
	var perOp time.Duration
	if iterations > 0 {
		perOp = elapsed / time.Duration(iterations)
	}
	l.InfoContext(ctx, "bench",
		"op", op,
		"iterations", iterations,
		"elapsed", elapsed,
		"per_op", perOp,
	)
}
