package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]bool
		err  error
	}{
		{"EmptyRows", [][]bool{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy checks that later changes to the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	in := [][]bool{{true, false}}
	gg, err := gridgraph.NewGridGraph(in)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	in[0][1] = true
	if gg.IsOpen(1, 0) {
		t.Error("IsOpen(1,0)=true after mutating input; want a private copy")
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]bool{
		{false, true, false},
		{true, false, true},
	}
	gg, err := gridgraph.NewGridGraph(grid)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

//----------------------------------------------------------------------------//
// FromSnapshot Tests
//----------------------------------------------------------------------------//

// TestFromSnapshot treats Open and Full as open, Closed as closed.
func TestFromSnapshot(t *testing.T) {
	g := percolation.MustNew(2)
	_ = g.Open(1, 1)
	_ = g.Open(2, 2)

	gg, err := gridgraph.FromSnapshot(g.Snapshot())
	if err != nil {
		t.Fatalf("FromSnapshot error: %v", err)
	}
	want := [][]bool{{true, false}, {false, true}}
	for y := range want {
		for x := range want[y] {
			if gg.IsOpen(x, y) != want[y][x] {
				t.Errorf("IsOpen(%d,%d)=%v; want %v", x, y, gg.IsOpen(x, y), want[y][x])
			}
		}
	}
}
