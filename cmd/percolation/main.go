// Command percolation estimates the site-percolation threshold of an N×N grid
// by Monte Carlo simulation.
//
// Usage:
//
//	percolation estimate 200 100 --workers 4 --csv trials.csv
//	percolation config --config run.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
