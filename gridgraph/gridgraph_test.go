package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/unblack/bit2"
	"github.com/katalvlaran/unblack/gridgraph"
)

// mustGrid builds a grid from literal rows or fails the test.
func mustGrid(t testing.TB, rows [][]int) *bit2.Grid {
	t.Helper()
	g, err := bit2.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

//----------------------------------------------------------------------------//
// New, InBounds and snapshot tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects nil and released grids.
func TestNew_Errors(t *testing.T) {
	if _, err := gridgraph.New(nil); !errors.Is(err, bit2.ErrNilGrid) {
		t.Errorf("New(nil) error = %v; want ErrNilGrid", err)
	}
	g := mustGrid(t, [][]int{{1}})
	g.Free()
	if _, err := gridgraph.New(g); !errors.Is(err, bit2.ErrReleased) {
		t.Errorf("New(released) error = %v; want ErrReleased", err)
	}
}

// TestInBounds checks InBounds and IsBorder on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.New(mustGrid(t, [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
		if !gg.IsBorder(xy[0], xy[1]) { // every cell of a 2-row grid is border
			t.Errorf("IsBorder(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
		if gg.Black(xy[0], xy[1]) {
			t.Errorf("Black(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestSnapshotIndependence ensures mutating the source grid after New does
// not change the GridGraph.
func TestSnapshotIndependence(t *testing.T) {
	g := mustGrid(t, [][]int{{1, 0}, {0, 0}})
	gg, err := gridgraph.New(g)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err = g.Put(0, 0, 0); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !gg.Black(0, 0) {
		t.Error("snapshot changed after source mutation")
	}
}

// TestCoordinateRoundTrip checks Coordinate inverts the row-major index.
func TestCoordinateRoundTrip(t *testing.T) {
	gg, err := gridgraph.New(mustGrid(t, [][]int{{0, 0, 0}, {0, 0, 0}}))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for idx := 0; idx < 6; idx++ {
		x, y := gg.Coordinate(idx)
		if y*gg.Width+x != idx {
			t.Errorf("Coordinate(%d) = (%d,%d)", idx, x, y)
		}
	}
}
