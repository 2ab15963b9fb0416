package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/percolation/percolation"
)

// BenchmarkOpenUntilPercolates runs one full trial on a 200×200 grid per iteration.
func BenchmarkOpenUntilPercolates(b *testing.B) {
	const n = 200
	order := randomOrder(n, rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := percolation.MustNew(n)
		for _, p := range order {
			_ = g.Open(p[0], p[1])
			if g.Percolates() {
				break
			}
		}
	}
}
