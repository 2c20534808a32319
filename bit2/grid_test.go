// Package bit2_test contains unit tests for the packed Grid.
package bit2_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/unblack/bit2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimension ensures New rejects non-positive extents.
func TestNewInvalidDimension(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		_, err := bit2.New(dims[0], dims[1])
		require.ErrorIs(t, err, bit2.ErrInvalidDimension, "dims %v", dims)
	}
}

// TestNewAllocation ensures New refuses grids larger than MaxCells.
func TestNewAllocation(t *testing.T) {
	_, err := bit2.New(bit2.MaxCells, 2)
	require.ErrorIs(t, err, bit2.ErrAllocation)

	_, err = bit2.New(math.MaxInt, math.MaxInt) // would overflow int without the division guard
	require.ErrorIs(t, err, bit2.ErrAllocation)
}

// TestWidthHeight verifies accessors report construction dimensions.
func TestWidthHeight(t *testing.T) {
	g, err := bit2.New(7, 3)
	require.NoError(t, err)

	require.Equal(t, 7, g.Width())
	require.Equal(t, 3, g.Height())
	require.Equal(t, 21, g.Len())
	require.Zero(t, g.Count()) // fresh grid is all zeros
}

// TestPutGetRoundTrip writes every cell of an odd-sized grid (so rows straddle
// 64-bit words) and reads each value back.
func TestPutGetRoundTrip(t *testing.T) {
	const w, h = 13, 11
	g, err := bit2.New(w, h)
	require.NoError(t, err)

	want := func(col, row int) int { return (col*7 + row*3) % 2 }
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			_, err = g.Put(col, row, want(col, row))
			require.NoError(t, err)
		}
	}
	ones := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			bit, err := g.Get(col, row)
			require.NoError(t, err)
			require.Equal(t, want(col, row), bit, "cell (%d,%d)", col, row)
			ones += bit
		}
	}
	require.Equal(t, ones, g.Count())
}

// TestPutReturnsPrevious checks Put reports the replaced bit.
func TestPutReturnsPrevious(t *testing.T) {
	g, err := bit2.New(2, 2)
	require.NoError(t, err)

	prev, err := g.Put(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, prev)

	prev, err = g.Put(1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, prev)

	prev, err = g.Put(1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, prev)

	bit, err := g.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, 0, bit)
}

// TestOutOfBounds ensures Get and Put reject coordinates outside the grid.
func TestOutOfBounds(t *testing.T) {
	g, err := bit2.New(3, 2)
	require.NoError(t, err)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {3, 2}} {
		_, err = g.Get(p[0], p[1])
		require.ErrorIs(t, err, bit2.ErrOutOfBounds, "Get%v", p)
		_, err = g.Put(p[0], p[1], 1)
		require.ErrorIs(t, err, bit2.ErrOutOfBounds, "Put%v", p)
	}
	require.Zero(t, g.Count())
}

// TestPutInvalidValue ensures only 0 and 1 can be stored.
func TestPutInvalidValue(t *testing.T) {
	g, err := bit2.New(2, 2)
	require.NoError(t, err)

	for _, v := range []int{-1, 2, 255} {
		_, err = g.Put(0, 0, v)
		require.ErrorIs(t, err, bit2.ErrInvalidValue)
	}
	bit, err := g.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, bit) // rejected writes leave the cell untouched
}

// TestErrorContext checks wrapped errors carry method and coordinates.
func TestErrorContext(t *testing.T) {
	g, err := bit2.New(2, 2)
	require.NoError(t, err)

	_, err = g.Put(5, 1, 1)
	require.EqualError(t, err, "Grid.Put(5,1): bit2: index out of bounds")
}

// TestFree ensures a released grid refuses access and traverses nothing.
func TestFree(t *testing.T) {
	g, err := bit2.New(2, 2)
	require.NoError(t, err)
	g.Free()
	g.Free() // idempotent

	require.True(t, g.Released())
	_, err = g.Get(0, 0)
	require.ErrorIs(t, err, bit2.ErrReleased)
	_, err = g.Put(0, 0, 1)
	require.ErrorIs(t, err, bit2.ErrReleased)
	_, err = g.Clone()
	require.ErrorIs(t, err, bit2.ErrReleased)

	visited := 0
	g.MapRowMajor(func(int, int, *bit2.Grid, int) { visited++ })
	require.Zero(t, visited)
	require.Nil(t, g.Rows())
}

// TestNilGrid ensures nil receivers fail cleanly.
func TestNilGrid(t *testing.T) {
	var g *bit2.Grid

	_, err := g.Get(0, 0)
	require.ErrorIs(t, err, bit2.ErrNilGrid)
	_, err = g.Put(0, 0, 1)
	require.ErrorIs(t, err, bit2.ErrNilGrid)
	require.Zero(t, g.Count())
	require.Equal(t, "<nil>", g.String())
	require.True(t, g.Released())
	require.Nil(t, g.Rows())
}

// TestFromRows covers construction from literal rows and its validation.
func TestFromRows(t *testing.T) {
	g, err := bit2.FromRows([][]int{
		{1, 0, 0},
		{0, 1, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, [][]int{{1, 0, 0}, {0, 1, 1}}, g.Rows())
	require.Equal(t, "1 0 0\n0 1 1\n", g.String())

	_, err = bit2.FromRows(nil)
	require.ErrorIs(t, err, bit2.ErrInvalidDimension)
	_, err = bit2.FromRows([][]int{{1}, {}})
	require.ErrorIs(t, err, bit2.ErrNonRectangular)
	_, err = bit2.FromRows([][]int{{0, 3}})
	require.ErrorIs(t, err, bit2.ErrInvalidValue)
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	g, err := bit2.FromRows([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)

	cp, err := g.Clone()
	require.NoError(t, err)
	require.True(t, g.Equal(cp))

	_, err = cp.Put(0, 0, 0)
	require.NoError(t, err)
	require.False(t, g.Equal(cp))

	bit, err := g.Get(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, bit)
}

// TestEqualShapes ensures grids of different shapes never compare equal.
func TestEqualShapes(t *testing.T) {
	a, err := bit2.New(2, 3)
	require.NoError(t, err)
	b, err := bit2.New(3, 2)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

// TestIsBorder checks border classification including degenerate shapes.
func TestIsBorder(t *testing.T) {
	g, err := bit2.New(4, 3)
	require.NoError(t, err)

	assert.True(t, g.IsBorder(0, 1))
	assert.True(t, g.IsBorder(3, 1))
	assert.True(t, g.IsBorder(2, 0))
	assert.True(t, g.IsBorder(2, 2))
	assert.False(t, g.IsBorder(1, 1))
	assert.False(t, g.IsBorder(2, 1))
	assert.False(t, g.IsBorder(-1, 0)) // outside is not border

	line, err := bit2.New(1, 5)
	require.NoError(t, err)
	for row := 0; row < 5; row++ {
		assert.True(t, line.IsBorder(0, row), "row %d", row)
	}
}
