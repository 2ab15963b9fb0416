package stats

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// Sentinel errors returned by the estimator.
var (
	// ErrInvalidArgument indicates a non-positive grid size or trial count.
	ErrInvalidArgument = errors.New("stats: grid size and trial count must be positive")
	// ErrBadWorkers indicates WithWorkers was given a value below 1.
	ErrBadWorkers = errors.New("stats: workers must be at least 1")
	// ErrVerifyMismatch indicates the incremental grid disagreed with the BFS oracle.
	ErrVerifyMismatch = errors.New("stats: grid state disagrees with BFS oracle")
)

// confidenceZ is the two-sided 95% normal quantile.
const confidenceZ = 1.96

// Options configures an Estimator. Use DefaultOptions and Option functions.
type Options struct {
	// Seed for the per-trial RNG streams; 0 selects a fixed default.
	Seed int64
	// Workers is the maximum number of trials run concurrently.
	Workers int
	// Verify cross-checks each finished trial against gridgraph BFS.
	Verify bool
	// Logger receives per-trial debug records and a run summary.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Seed=0, Workers=1, Verify=false and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: 1,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets how many trials may run at once.
func WithWorkers(k int) Option {
	return func(o *Options) {
		o.Workers = k
	}
}

// WithVerify enables the BFS cross-check after every trial.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}

// WithLogger sets the logger; nil keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the per-trial samples and their summary statistics.
// Thresholds[t] is the open-site fraction at which trial t percolated and
// Clusters[t] the number of open clusters on its final grid.
type Result struct {
	N            int
	Trials       int
	Thresholds   []float64
	Clusters     []int
	Mean         float64
	StdDev       float64 // sample standard deviation; NaN when Trials == 1
	ConfidenceLo float64
	ConfidenceHi float64
	Elapsed      time.Duration
}
