package openlist

import (
	"log/slog"
)

type options struct {
	rng              Rand
	newRand          func() Rand
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures the runtime collaborators of an open list: logging,
// metrics and randomness. Search semantics live in Config.
type Option func(*options)

// WithRand injects the random source used for RANDOM eviction and stochastic
// tie-breaking. Each list should get its own source; sources are not
// synchronized.
//
// If nil is passed, a fresh NewRNG(DefaultSeed) is used.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithRandFunc installs a constructor for the random source. It is called
// once for every list the option is applied to, so each list built by a
// Factory gets a source of its own. It takes precedence over WithRand and
// WithSeed.
func WithRandFunc(fn func() Rand) Option {
	return func(o *options) {
		o.newRand = fn
	}
}

// WithSeed is shorthand for WithRand(NewRNG(seed)).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = NewRNG(seed)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &openlist.BasicMetricsCollector{}
//	list, _ := openlist.NewFractal[openlist.StateEntry](cfg, openlist.WithMetricsCollector(metrics))
//	// ... run the search ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserted: %d, max dimension: %d\n", stats.InsertCount, stats.MaxDimension)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := openlist.NewJSONLogger(slog.LevelDebug)
//	list, _ := openlist.NewFractal[openlist.StateEntry](cfg, openlist.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.newRand != nil {
		o.rng = o.newRand()
	}
	if o.rng == nil {
		o.rng = NewRNG(DefaultSeed)
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
