package gridgraph

import (
	"container/list"
)

// MinOpensToSpan finds a path from the top row to the bottom row that passes
// through the fewest closed cells. Entering an open cell costs 0, a closed
// cell costs 1. Returns the path as row-major indices (top cell first) and
// the number of closed cells on it; cost 0 means the grid already spans.
//
// Behavior:
//  1. Seed a 0-1 BFS with every top-row cell at its own entry cost.
//  2. Open neighbours go to the deque front, closed ones to the back.
//  3. Stop at the first bottom-row cell popped.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H). Memory: O(W·H) for distance and prev pointers.
func (gg *GridGraph) MinOpensToSpan() (path []int, cost int) {
	total := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost0 at front, cost1 at back
	dq := list.New()
	for x := 0; x < gg.Width; x++ {
		i := gg.index(x, 0)
		if gg.Cells[0][x] {
			dist[i] = 0
			dq.PushFront(i)
		} else {
			dist[i] = 1
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		ux, uy := gg.Coordinate(u)
		if uy == gg.Height-1 {
			target = u
			break
		}
		for _, d := range conn4 {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.Cells[vy][vx] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}

	return path, dist[target]
}
