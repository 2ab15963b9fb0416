package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// conn4 lists orthogonal neighbour offsets: N, E, S, W.
var conn4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// GridGraph is an immutable open/closed mask viewed as a graph.
// Width and Height define dimensions; Cells[y][x] is true for open cells.
// Row y=0 is the top row, y=Height-1 the bottom row.
type GridGraph struct {
	Width, Height int
	Cells         [][]bool
}
