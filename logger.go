package openlist

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Logger wraps slog.Logger with open-list specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
	dimension *rate.Sometimes
}

func newLogger(handler slog.Handler) *Logger {
	return &Logger{
		Logger: slog.New(handler),
		// A widening plateau increases its dimension on almost every pop;
		// report the first few and then at most once per second.
		dimension: &rate.Sometimes{First: 8, Interval: time.Second},
	}
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return newLogger(handler)
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return newLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return newLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithKind adds the open list kind (e.g. "fractal") to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("kind", kind),
		dimension: l.dimension,
	}
}

// WithEntry adds the entry shape ("state" or "edge") to the logger.
func (l *Logger) WithEntry(entry string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("entry", entry),
		dimension: l.dimension,
	}
}

// LogDimensionIncrease logs that a plateau widened its fairness threshold.
// Output is throttled.
func (l *Logger) LogDimensionIncrease(key string, dim int) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.dimension.Do(func() {
		l.Debug("increased dimension",
			"key", key,
			"dimension", dim,
		)
	})
}

// LogCreate logs the construction of an open list.
func (l *Logger) LogCreate(cfg Config) {
	l.Debug("open list created",
		"evaluators", len(cfg.Evaluators),
		"type_evaluators", len(cfg.TypeEvaluators),
		"queue_type", cfg.QueueType.String(),
		"pref_only", cfg.PreferredOnly,
		"unsafe_pruning", cfg.UnsafePruning,
		"stochastic", cfg.Stochastic,
	)
}

// LogClear logs that an open list dropped its entries.
func (l *Logger) LogClear(size int) {
	l.Debug("open list cleared",
		"size", size,
	)
}

// LogSearch logs the outcome of a search run.
func (l *Logger) LogSearch(ctx context.Context, status string, expanded, generated int, err error) {
	if err != nil {
		l.WarnContext(ctx, "search interrupted",
			"status", status,
			"expanded", expanded,
			"generated", generated,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "search finished",
			"status", status,
			"expanded", expanded,
			"generated", generated,
		)
	}
}

// LogProgress logs a new best progress value reached by a search.
func (l *Logger) LogProgress(ctx context.Context, value, expanded int) {
	l.DebugContext(ctx, "new best value",
		"value", value,
		"expanded", expanded,
	)
}

// LogPortfolioRun logs the outcome of one configuration of a portfolio.
func (l *Logger) LogPortfolioRun(ctx context.Context, name string, timeout time.Duration, status string) {
	l.InfoContext(ctx, "portfolio run finished",
		"config", name,
		"timeout", timeout,
		"status", status,
	)
}
