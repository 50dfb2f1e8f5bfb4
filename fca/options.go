package fca

import (
	"runtime"

	"github.com/YuminosukeSato/gofca/pkg/log"
)

const (
	// DefaultMaxBruteForceObjects bounds the context size accepted by
	// BruteForceEnumerator unless overridden with WithMaxBruteForceObjects.
	DefaultMaxBruteForceObjects = 24

	// MaxBruteForceObjects is the hard limit: subsets are addressed by a
	// 64-bit mask and the loop counter must not overflow int.
	MaxBruteForceObjects = 62

	// DefaultParallelThreshold is the number of subsets below which brute
	// force runs on the calling goroutine.
	DefaultParallelThreshold = 1 << 12
)

type options struct {
	logger            log.Logger
	concurrent        bool
	strict            bool
	workers           int
	parallelThreshold int
	maxObjects        int
}

func defaultOptions() options {
	return options{
		logger:            log.GetLogger(),
		workers:           runtime.NumCPU(),
		parallelThreshold: DefaultParallelThreshold,
		maxObjects:        DefaultMaxBruteForceObjects,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures enumerators and Analyze.
type Option func(*options)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = log.Nop()
		}
		o.logger = l
	}
}

// WithConcurrentRun makes Analyze run both enumerators on separate goroutines.
func WithConcurrentRun(enabled bool) Option {
	return func(o *options) {
		o.concurrent = enabled
	}
}

// WithStrictConsistency makes Analyze return a *errors.ConsistencyViolation
// alongside the analysis when the enumerators disagree.
func WithStrictConsistency(enabled bool) Option {
	return func(o *options) {
		o.strict = enabled
	}
}

// WithWorkers sets the number of goroutines used by brute force.
// Values below 1 mean runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		o.workers = n
	}
}

// WithParallelThreshold sets the subset count below which brute force stays
// sequential.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.parallelThreshold = n
	}
}

// WithMaxBruteForceObjects raises or lowers the brute-force size limit.
// It is clamped to MaxBruteForceObjects; negative values mean
// DefaultMaxBruteForceObjects.
func WithMaxBruteForceObjects(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			n = DefaultMaxBruteForceObjects
		case n > MaxBruteForceObjects:
			n = MaxBruteForceObjects
		}
		o.maxObjects = n
	}
}
