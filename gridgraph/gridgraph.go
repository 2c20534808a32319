// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/unblack/bit2"
)

// GridGraph is an immutable snapshot of a grid's black cells. It is safe
// for concurrent readers and must not be copied after first use.
// Width and Height define dimensions; black[y*Width+x] is true for bit 1.
// x is the column, y the row.
type GridGraph struct {
	Width, Height   int
	black           []bool
	neighborOffsets [4][2]int

	// comps caches the labelling shared by Component, the filters and
	// Summarize.
	compsOnce sync.Once
	comps     [][]int
}

// New snapshots g. Later changes to g do not affect the GridGraph.
// Complexity: O(W×H) time and memory.
func New(g *bit2.Grid) (*GridGraph, error) {
	if g == nil {
		return nil, bit2.ErrNilGrid
	}
	if g.Released() {
		return nil, fmt.Errorf("gridgraph: %w", bit2.ErrReleased)
	}
	gg := &GridGraph{
		Width:  g.Width(),
		Height: g.Height(),
		black:  make([]bool, g.Len()),
		// N, E, S, W
		neighborOffsets: [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}
	for c := range g.RowMajor() {
		gg.black[gg.index(c.Col, c.Row)] = c.Bit == 1
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsBorder reports whether (x,y) is on the first or last row or column.
func (gg *GridGraph) IsBorder(x, y int) bool {
	return gg.InBounds(x, y) && (x == 0 || y == 0 || x == gg.Width-1 || y == gg.Height-1)
}

// Black reports whether (x,y) was black when the snapshot was taken.
// Out-of-bounds cells are not black.
func (gg *GridGraph) Black(x, y int) bool {
	return gg.InBounds(x, y) && gg.black[gg.index(x, y)]
}

// NeighborOffsets returns the N, E, S, W offsets used by every traversal.
func (gg *GridGraph) NeighborOffsets() [4][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
