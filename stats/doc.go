// Package stats estimates the percolation threshold p* by Monte Carlo trials.
//
// Each trial builds a fresh percolation.Grid, opens uniformly random closed
// sites until the grid percolates, and records the fraction of open sites.
// Result aggregates the samples: mean, sample standard deviation and the
// 95% confidence interval mean ± 1.96·s/√T.
//
// Determinism:
//
//   - Trial t draws from its own RNG stream derived from (seed, t), so the
//     same seed yields the same thresholds for any worker count.
//
// Concurrency:
//
//   - WithWorkers(k) runs up to k trials at once. Trials share nothing:
//     every goroutine owns its grid and its RNG.
package stats
