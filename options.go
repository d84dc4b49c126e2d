package predgo

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/predgo/codec"
)

// Options contains configuration options for an Index.
type Options struct {
	// Logger receives structured build and query logs.
	// Defaults to a no-op logger.
	Logger *Logger

	// Codec compresses snapshot payloads. Defaults to codec.Default (zstd).
	// Loading reads the codec name from the snapshot header, so this only
	// affects writes.
	Codec codec.Codec

	// MembershipSet maintains a roaring bitmap over the key set so that
	// Contains runs without touching the trie and exact-hit Predecessor
	// queries short-circuit. Costs extra memory at build time.
	MembershipSet bool

	// Parallelism bounds the worker pool used by BatchPredecessor.
	// Defaults to GOMAXPROCS.
	Parallelism int

	// MetricsCollector records operation counts and latencies.
	// Defaults to NoopMetricsCollector.
	MetricsCollector MetricsCollector
}

// DefaultOptions contains the default configuration options for an Index.
var DefaultOptions = Options{
	MembershipSet: true,
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithLogLevel sets a text logger at the given level.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) func(*Options) {
	return func(o *Options) {
		o.Logger = NewTextLogger(level)
	}
}

// WithCodec configures the snapshot payload codec.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) func(*Options) {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithMembershipSet toggles the roaring membership set.
func WithMembershipSet(enabled bool) func(*Options) {
	return func(o *Options) {
		o.MembershipSet = enabled
	}
}

// WithParallelism bounds the BatchPredecessor worker pool.
// Values < 1 fall back to GOMAXPROCS.
func WithParallelism(n int) func(*Options) {
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) func(*Options) {
	return func(o *Options) {
		o.MetricsCollector = mc
	}
}

func applyOptions(optFns []func(*Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	if opts.MetricsCollector == nil {
		opts.MetricsCollector = NoopMetricsCollector{}
	}

	return opts
}
