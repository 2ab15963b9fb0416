// Package percolation models site percolation on an N×N square grid and
// answers connectivity queries incrementally as sites open.
//
// What:
//
//   - Grid tracks open sites, which open sites are "full" (joined to the top
//     row by a chain of open 4-neighbours), and whether the grid percolates
//     (an open path links row 1 to row N).
//   - Sites are addressed 1-based: (row, col) in [1,N]×[1,N].
//
// How:
//
//   - One union-find element per site plus a virtual top anchor (index 0),
//     which is always open and full. Row 1 sites link to the anchor.
//   - There is no virtual bottom anchor. Each component root carries a
//     BOTTOM flag next to its FULL flag; both are OR'd onto the surviving
//     root on every merge and never cleared.
//   - FULL is never derived from BOTTOM: a bottom-row component that is not
//     joined to the top stays not full after the grid percolates (no backwash).
//
// Complexity:
//
//   - New: O(N²) time and memory.
//   - Open, IsFull: O(α(N²)) amortized. IsOpen, Percolates: O(1) / O(α(N²)).
//
// Errors:
//
//   - ErrInvalidArgument: New called with N ≤ 0.
//   - ErrIndexOutOfBounds: row or col outside [1,N].
//
// A Grid is mutated by a single goroutine; it is not safe for concurrent use.
package percolation
