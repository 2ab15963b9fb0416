package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// Grid is an N×N site-percolation system.
// Linear index of (row, col) is (row-1)*n + col; index 0 is the virtual top.
type Grid struct {
	n      int
	states []siteState
	uf     *unionfind.UF
	opened int
}

// New constructs an N×N grid with every site closed.
// Returns an error wrapping ErrInvalidArgument if n ≤ 0.
// Complexity: O(N²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArgument, n)
	}
	sites := n*n + 1
	uf, err := unionfind.New(sites)
	if err != nil {
		return nil, err
	}
	g := &Grid{
		n:      n,
		states: make([]siteState, sites),
		uf:     uf,
	}
	g.states[virtualTop] = stateOpen | stateFull

	return g, nil
}

// MustNew is like New but panics on error. Intended for tests and examples.
func MustNew(n int) *Grid {
	g, err := New(n)
	if err != nil {
		panic(err)
	}

	return g
}

// Size returns N, the grid side length.
func (g *Grid) Size() int {
	return g.n
}

// OpenSites returns the number of distinct sites opened so far.
func (g *Grid) OpenSites() int {
	return g.opened
}

// Clusters returns the number of open clusters, where every cluster touching
// row 1 counts as part of a single top cluster (they share the virtual top).
// Every closed site is a union-find singleton, and the virtual top is one
// more set until some row-1 site opens.
// Complexity: O(α(N²)).
func (g *Grid) Clusters() int {
	c := g.uf.Count() - (g.n*g.n - g.opened)
	if g.uf.SetSize(virtualTop) == 1 {
		c--
	}

	return c
}

// Open marks (row, col) open and merges it with its open neighbours.
// Opening an already open site is a no-op.
//
// Steps:
//  1. Validate indices.
//  2. Set OPEN on the site.
//  3. Row 1 sets FULL on the site's root; row N sets BOTTOM.
//  4. Connect up (the virtual top for row 1), down, left and right.
//
// Complexity: O(α(N²)) amortized.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	site := g.index(row, col)
	if g.states[site]&stateOpen == 0 {
		g.opened++
	}
	g.states[site] |= stateOpen

	root := g.uf.Find(site)
	if row == 1 {
		g.states[root] |= stateFull
	}
	if row == g.n {
		g.states[root] |= stateBottom
	}

	if row == 1 {
		g.connect(site, virtualTop)
	} else {
		g.connect(site, g.index(row-1, col))
	}
	if row < g.n {
		g.connect(site, g.index(row+1, col))
	}
	if col > 1 {
		g.connect(site, g.index(row, col-1))
	}
	if col < g.n {
		g.connect(site, g.index(row, col+1))
	}

	return nil
}

// connect merges a with other if other is open, carrying the union of both
// components' FULL and BOTTOM flags onto the surviving root.
// Flags are captured before Union because either root may stop being a root.
func (g *Grid) connect(a, other int) {
	if g.states[other]&stateOpen == 0 {
		return
	}
	carry := (g.states[g.uf.Find(a)] | g.states[g.uf.Find(other)]) & (stateFull | stateBottom)

	g.uf.Union(a, other)

	g.states[g.uf.Find(a)] |= carry
}

// IsOpen reports whether (row, col) has been opened.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.states[g.index(row, col)]&stateOpen != 0, nil
}

// IsFull reports whether (row, col) is connected to the top row through open sites.
// Complexity: O(α(N²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.full(g.index(row, col)), nil
}

// Percolates reports whether an open path links row 1 to row N.
// Once true it stays true for the lifetime of g.
func (g *Grid) Percolates() bool {
	s := g.states[g.uf.Find(virtualTop)]

	return s&stateFull != 0 && s&stateBottom != 0
}

// Snapshot returns a row-major copy of every cell's state:
// out[row-1][col-1] for 1-based (row, col).
// Complexity: O(N²·α(N²)).
func (g *Grid) Snapshot() [][]CellState {
	out := make([][]CellState, g.n)
	for r := 1; r <= g.n; r++ {
		out[r-1] = make([]CellState, g.n)
		for c := 1; c <= g.n; c++ {
			site := g.index(r, c)
			switch {
			case g.states[site]&stateOpen == 0:
				out[r-1][c-1] = Closed
			case g.full(site):
				out[r-1][c-1] = Full
			default:
				out[r-1][c-1] = Open
			}
		}
	}

	return out
}

// full reads FULL from the site's root, never from the site itself.
func (g *Grid) full(site int) bool {
	return g.states[g.uf.Find(site)]&stateFull != 0
}

func (g *Grid) validate(row, col int) error {
	if row < 1 || row > g.n || col < 1 || col > g.n {
		return fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrIndexOutOfBounds, row, col, g.n)
	}

	return nil
}

// index maps 1-based (row, col) to the row-major linear site index.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + col
}
