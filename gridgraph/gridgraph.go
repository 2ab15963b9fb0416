package gridgraph

import "github.com/katalvlaran/percolation/percolation"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular mask.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(open [][]bool) (*GridGraph, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(open), len(open[0])
	for _, row := range open {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], open[y])
	}

	return &GridGraph{Width: w, Height: h, Cells: cells}, nil
}

// FromSnapshot builds a GridGraph from percolation.Grid.Snapshot output.
// Open and Full cells are both treated as open.
func FromSnapshot(cells [][]percolation.CellState) (*GridGraph, error) {
	mask := make([][]bool, len(cells))
	for y, row := range cells {
		mask[y] = make([]bool, len(row))
		for x, s := range row {
			mask[y][x] = s != percolation.Closed
		}
	}

	return NewGridGraph(mask)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsOpen reports whether (x,y) is in bounds and open.
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.Cells[y][x]
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
