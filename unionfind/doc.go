// Package unionfind provides a compact, int-indexed disjoint-set
// (union-find) structure.
//
// What:
//
//   - UF partitions the indices 0..n-1 into disjoint sets.
//   - Find returns the canonical representative (root) of an index's set.
//   - Union merges two sets; the smaller tree is attached under the larger.
//
// Why:
//
//   - Incremental connectivity: grids and graphs that only ever gain edges
//     (percolation, Kruskal, island merging) need near-constant merge/query.
//
// Complexity:
//
//   - Find, Union, Connected: O(α(n)) amortized (union by size + path halving).
//   - Memory: O(n).
//
// Caveats:
//
//   - Which root survives a Union is an implementation detail. Callers that
//     attach data to roots must re-derive the root with Find after merging.
//   - UF is not safe for concurrent use.
//   - Indices outside [0, n) panic, the same way slice indexing does.
package unionfind
