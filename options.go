package panphon

import (
	"io"
	"log/slog"
)

type options struct {
	tablePath        string
	tableReader      io.Reader
	normalize        bool
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures FeatureTable construction.
type Option func(*options)

// WithTablePath loads the feature table from a CSV file instead of the
// embedded default. Files ending in .zst or .lz4 are transparently
// decompressed.
func WithTablePath(path string) Option {
	return func(o *options) {
		o.tablePath = path
	}
}

// WithTableReader loads the feature table from a caller-supplied CSV
// stream instead of the embedded default. It takes precedence over
// WithTablePath. The reader is consumed during construction and not
// closed.
func WithTableReader(r io.Reader) Option {
	return func(o *options) {
		o.tableReader = r
	}
}

// WithoutNormalization disables NFD normalization of lookup and
// segmentation input. Use this when the table and all inputs are
// already in a consistent normal form.
func WithoutNormalization() Option {
	return func(o *options) {
		o.normalize = false
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &panphon.BasicMetricsCollector{}
//	ft, _ := panphon.New(panphon.WithMetricsCollector(metrics))
//	// ... use ft ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := panphon.NewJSONLogger(slog.LevelInfo)
//	ft, _ := panphon.New(panphon.WithLogger(logger))
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
		normalize:        true,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	// A nil collector or logger disables the concern, not construction.
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
