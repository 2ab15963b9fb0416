package gridgraph

// ConnectedComponents finds all clusters of open cells under 4-connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS order. Components appear in row-major order of their
// first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Cells[y][x] || seen[gg.index(x, y)] {
				continue
			}
			comps = append(comps, gg.bfs([]int{gg.index(x, y)}, seen))
		}
	}

	return comps
}

// ClustersWithTopMerged counts connected components, treating every component
// that touches the top row as one.
// Complexity: O(W·H).
func (gg *GridGraph) ClustersWithTopMerged() int {
	count, top := 0, false
	for _, comp := range gg.ConnectedComponents() {
		touchesTop := false
		for _, idx := range comp {
			if _, y := gg.Coordinate(idx); y == 0 {
				touchesTop = true
				break
			}
		}
		switch {
		case !touchesTop:
			count++
		case !top:
			top = true
			count++
		}
	}

	return count
}

// ReachableFromTop returns, per row-major index, whether the cell is open and
// connected to some open top-row cell.
// Complexity: O(W·H).
func (gg *GridGraph) ReachableFromTop() []bool {
	seen := make([]bool, gg.Width*gg.Height)
	var sources []int
	for x := 0; x < gg.Width; x++ {
		if gg.Cells[0][x] {
			sources = append(sources, gg.index(x, 0))
		}
	}
	if len(sources) > 0 {
		gg.bfs(sources, seen)
	}

	return seen
}

// Spans reports whether an open path connects the top row to the bottom row.
// Complexity: O(W·H).
func (gg *GridGraph) Spans() bool {
	reach := gg.ReachableFromTop()
	for x := 0; x < gg.Width; x++ {
		if reach[gg.index(x, gg.Height-1)] {
			return true
		}
	}

	return false
}

// bfs expands from sources over open cells, marking seen, and returns the
// visited indices. Unseen sources are marked on entry.
func (gg *GridGraph) bfs(sources []int, seen []bool) []int {
	queue := make([]int, 0, len(sources))
	for _, s := range sources {
		seen[s] = true
		queue = append(queue, s)
	}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range conn4 {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.IsOpen(vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
