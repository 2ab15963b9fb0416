package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ExampleGrid shows a column percolating while a bottom pocket stays not full.
func ExampleGrid() {
	g, _ := percolation.New(3)
	_ = g.Open(1, 1)
	_ = g.Open(2, 1)
	_ = g.Open(3, 3)
	fmt.Println("percolates:", g.Percolates())

	_ = g.Open(3, 1)
	full, _ := g.IsFull(3, 3)
	fmt.Println("percolates:", g.Percolates())
	fmt.Println("(3,3) full:", full)
	fmt.Println("open sites:", g.OpenSites())

	// Output:
	// percolates: false
	// percolates: true
	// (3,3) full: false
	// open sites: 4
}
