// Package gridgraph treats an N×N mask of open cells as a 4-connected graph
// and answers reachability questions by plain breadth-first search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]bool mask (true = open).
//   - ConnectedComponents finds clusters of open cells.
//   - ReachableFromTop / Spans report which cells a top-row source reaches
//     and whether any open path touches the bottom row.
//   - MinOpensToSpan computes how many closed cells must still be opened
//     for the grid to span (0-1 BFS).
//
// Why:
//
//   - Reference oracle: the answers are derived from scratch with no shared
//     state, so they can cross-check an incremental union-find structure.
//
// Complexity:
//
//   - ConnectedComponents, ReachableFromTop, Spans: O(W×H), Memory: O(W×H).
//   - MinOpensToSpan: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input mask has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
