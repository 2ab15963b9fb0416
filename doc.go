// Package percolation is the root of a Monte Carlo toolkit for site
// percolation on N×N grids.
//
// What lives where:
//
//	unionfind/       — int-indexed disjoint set: union by size + path halving
//	percolation/     — Grid: incremental open/full/percolates without backwash
//	gridgraph/       — BFS reference oracle over open-cell masks
//	stats/           — threshold estimator: seeded trials, mean, stddev, 95% CI
//	config/          — YAML configuration over embedded defaults
//	report/          — text summary and per-trial CSV
//	cmd/percolation/ — CLI
//
// Quick ASCII example (N=3, # = open):
//
//	# . .
//	# . .
//	# . #
//
// percolates through column 1, while (3,3) stays open but not full.
//
//	go run ./cmd/percolation estimate 200 100
package percolation
