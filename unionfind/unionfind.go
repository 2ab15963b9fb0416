package unionfind

import "errors"

// ErrNegativeSize indicates New was asked for a negative number of elements.
var ErrNegativeSize = errors.New("unionfind: size must be non-negative")

// UF is a weighted quick-union structure with path halving.
// parent[i] is i's parent; a root satisfies parent[i] == i.
// size[r] is the number of elements in the tree rooted at r (valid only for roots).
type UF struct {
	parent []int
	size   []int
	count  int
}

// New returns a UF with n singleton sets {0}, {1}, …, {n-1}.
// Returns ErrNegativeSize if n < 0.
// Complexity: O(n) time and memory.
func New(n int) (*UF, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	uf := &UF{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements managed by uf.
func (uf *UF) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint sets.
func (uf *UF) Count() int {
	return uf.count
}

// Find returns the root of the set containing p.
// Iterative with path halving: every visited node is re-pointed to its grandparent.
// Complexity: O(α(n)) amortized.
func (uf *UF) Find(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Connected reports whether p and q are in the same set.
func (uf *UF) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union merges the sets containing p and q. It is a no-op if they already
// share a root. The root of the larger tree survives; on ties, p's root survives.
// Complexity: O(α(n)) amortized.
func (uf *UF) Union(p, q int) {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return
	}
	// Attach smaller tree under larger root.
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--
}

// SetSize returns the number of elements in p's set.
func (uf *UF) SetSize(p int) int {
	return uf.size[uf.Find(p)]
}
