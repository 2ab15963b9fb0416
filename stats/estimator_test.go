package stats_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/stats"
)

// TestNewEstimator_Errors verifies argument validation.
func TestNewEstimator_Errors(t *testing.T) {
	cases := []struct {
		name      string
		n, trials int
		opts      []stats.Option
		err       error
	}{
		{"ZeroN", 0, 10, nil, stats.ErrInvalidArgument},
		{"NegativeTrials", 5, -1, nil, stats.ErrInvalidArgument},
		{"ZeroWorkers", 5, 10, []stats.Option{stats.WithWorkers(0)}, stats.ErrBadWorkers},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := stats.NewEstimator(tc.n, tc.trials, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewEstimator(%d,%d) error = %v; want %v", tc.n, tc.trials, err, tc.err)
			}
		})
	}
}

// TestRun_Summary checks that the summary is consistent with the samples.
func TestRun_Summary(t *testing.T) {
	est, err := stats.NewEstimator(20, 30, stats.WithSeed(5))
	require.NoError(t, err)
	res, err := est.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Thresholds, 30)
	require.Len(t, res.Clusters, 30)
	for _, c := range res.Clusters {
		assert.GreaterOrEqual(t, c, 1, "a percolating grid has at least one cluster")
	}
	assert.Equal(t, 20, res.N)
	assert.Equal(t, 30, res.Trials)
	sum := 0.0
	for _, p := range res.Thresholds {
		assert.Greater(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, sum/30, res.Mean, 1e-12)
	assert.Greater(t, res.StdDev, 0.0)
	assert.InDelta(t, res.Mean-1.96*res.StdDev/math.Sqrt(30), res.ConfidenceLo, 1e-12)
	assert.InDelta(t, res.Mean+1.96*res.StdDev/math.Sqrt(30), res.ConfidenceHi, 1e-12)
	// p* ≈ 0.5927; small grids are biased but stay well inside this band.
	assert.InDelta(t, 0.59, res.Mean, 0.08)
}

// TestRun_DeterministicAcrossWorkers runs the same seed with 1 and 4 workers.
func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	run := func(workers int) []float64 {
		est, err := stats.NewEstimator(15, 16, stats.WithSeed(99), stats.WithWorkers(workers))
		require.NoError(t, err)
		res, err := est.Run(context.Background())
		require.NoError(t, err)

		return res.Thresholds
	}
	require.Equal(t, run(1), run(4))
}

// TestRun_SeedsDiffer checks two seeds give different samples.
func TestRun_SeedsDiffer(t *testing.T) {
	run := func(seed int64) []float64 {
		est, err := stats.NewEstimator(10, 5, stats.WithSeed(seed))
		require.NoError(t, err)
		res, err := est.Run(context.Background())
		require.NoError(t, err)

		return res.Thresholds
	}
	assert.NotEqual(t, run(1), run(2))
	assert.Equal(t, run(0), run(0))
}

// TestRun_Verify runs the BFS cross-check on every trial.
func TestRun_Verify(t *testing.T) {
	est, err := stats.NewEstimator(12, 10, stats.WithVerify(), stats.WithWorkers(3))
	require.NoError(t, err)
	_, err = est.Run(context.Background())
	require.NoError(t, err)
}

// TestRun_SingleTrial leaves the spread undefined.
func TestRun_SingleTrial(t *testing.T) {
	est, err := stats.NewEstimator(1, 1)
	require.NoError(t, err)
	res, err := est.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Mean, "a 1×1 grid percolates on its only site")
	assert.True(t, math.IsNaN(res.StdDev))
	assert.True(t, math.IsNaN(res.ConfidenceLo))
}

// TestRun_Cancelled stops before any trial when the context is already done.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	est, err := stats.NewEstimator(10, 100)
	require.NoError(t, err)
	_, err = est.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// TestRunTrial returns a percolating grid with the matching open count.
func TestRunTrial(t *testing.T) {
	p, grid, err := stats.RunTrial(context.Background(), 8, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.True(t, grid.Percolates())
	assert.Equal(t, float64(grid.OpenSites())/64, p)
	assert.GreaterOrEqual(t, grid.OpenSites(), 8, "need at least one site per row")
}
