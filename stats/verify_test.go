package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/percolation"
)

// TestVerify_PartialGrids checks the BFS cross-check on grids that have not
// percolated yet, where the shortest span still crosses closed sites.
func TestVerify_PartialGrids(t *testing.T) {
	g := percolation.MustNew(4)
	require.NoError(t, verify(g))

	steps := [][2]int{{1, 1}, {1, 4}, {3, 3}, {4, 3}, {2, 1}, {2, 2}, {2, 3}}
	for _, p := range steps {
		require.NoError(t, g.Open(p[0], p[1]))
		require.NoError(t, verify(g), "after opening (%d,%d)", p[0], p[1])
	}
	require.True(t, g.Percolates())
	require.Equal(t, 1, g.Clusters())
}
