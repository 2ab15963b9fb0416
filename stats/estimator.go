package stats

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
)

// ctxCheckEvery is how many random draws a trial makes between context checks.
const ctxCheckEvery = 1 << 14

// Estimator runs T independent percolation trials on N×N grids.
type Estimator struct {
	n      int
	trials int
	opts   Options
}

// NewEstimator validates n and trials and applies opts over DefaultOptions.
// Returns ErrInvalidArgument if n ≤ 0 or trials ≤ 0, ErrBadWorkers if Workers < 1.
func NewEstimator(n, trials int, opts ...Option) (*Estimator, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%w: n=%d trials=%d", ErrInvalidArgument, n, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, o.Workers)
	}

	return &Estimator{n: n, trials: trials, opts: o}, nil
}

// Run executes every trial and aggregates the samples.
// At most opts.Workers trials run concurrently; the first error (including
// context cancellation) stops scheduling and is returned.
func (e *Estimator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	log := e.opts.Logger
	thresholds := make([]float64, e.trials)
	clusters := make([]int, e.trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for t := 0; t < e.trials; t++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			p, grid, err := RunTrial(gctx, e.n, trialRNG(e.opts.Seed, t))
			if err != nil {
				return err
			}
			if e.opts.Verify {
				if err := verify(grid); err != nil {
					return fmt.Errorf("trial %d: %w", t, err)
				}
			}
			thresholds[t] = p
			clusters[t] = grid.Clusters()
			log.Debug("trial complete", "trial", t, "n", e.n, "threshold", p, "clusters", clusters[t])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := summarize(e.n, thresholds)
	res.Clusters = clusters
	res.Elapsed = time.Since(start)
	log.Info("estimate complete",
		"n", e.n,
		"trials", e.trials,
		"workers", e.opts.Workers,
		"mean", res.Mean,
		"stddev", res.StdDev,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// RunTrial opens uniformly random sites of a fresh n×n grid until it
// percolates and returns the open-site fraction together with the final grid.
// Draws that hit an already open site are rejected and redrawn.
func RunTrial(ctx context.Context, n int, rng *rand.Rand) (float64, *percolation.Grid, error) {
	grid, err := percolation.New(n)
	if err != nil {
		return 0, nil, err
	}
	for draws := 1; !grid.Percolates(); draws++ {
		if draws%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, nil, err
			}
		}
		row, col := 1+rng.Intn(n), 1+rng.Intn(n)
		open, err := grid.IsOpen(row, col)
		if err != nil {
			return 0, nil, err
		}
		if open {
			continue
		}
		if err := grid.Open(row, col); err != nil {
			return 0, nil, err
		}
	}

	return float64(grid.OpenSites()) / float64(n*n), grid, nil
}

// summarize computes mean, sample standard deviation and the 95% interval.
func summarize(n int, thresholds []float64) *Result {
	mean := stat.Mean(thresholds, nil)
	sd := math.NaN()
	if len(thresholds) > 1 {
		sd = stat.StdDev(thresholds, nil)
	}
	half := confidenceZ * sd / math.Sqrt(float64(len(thresholds)))

	return &Result{
		N:            n,
		Trials:       len(thresholds),
		Thresholds:   thresholds,
		Mean:         mean,
		StdDev:       sd,
		ConfidenceLo: mean - half,
		ConfidenceHi: mean + half,
	}
}

// verify recomputes spanning, cluster count and full cells by BFS and
// compares them with grid.
func verify(grid *percolation.Grid) error {
	snap := grid.Snapshot()
	gg, err := gridgraph.FromSnapshot(snap)
	if err != nil {
		return err
	}
	if gg.Spans() != grid.Percolates() {
		return fmt.Errorf("%w: percolates=%v bfs=%v", ErrVerifyMismatch, grid.Percolates(), gg.Spans())
	}
	if _, cost := gg.MinOpensToSpan(); (cost == 0) != grid.Percolates() {
		return fmt.Errorf("%w: percolates=%v but %d closed sites block the shortest span",
			ErrVerifyMismatch, grid.Percolates(), cost)
	}
	if comps := gg.ClustersWithTopMerged(); comps != grid.Clusters() {
		return fmt.Errorf("%w: clusters=%d bfs=%d", ErrVerifyMismatch, grid.Clusters(), comps)
	}
	reach := gg.ReachableFromTop()
	for y, row := range snap {
		for x, s := range row {
			if (s == percolation.Full) != reach[y*gg.Width+x] {
				return fmt.Errorf("%w: site (%d,%d) full=%v bfs=%v",
					ErrVerifyMismatch, y+1, x+1, s == percolation.Full, reach[y*gg.Width+x])
			}
		}
	}

	return nil
}
