// SPDX-License-Identifier: MIT

// Package bit2 - packed storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep one bit per cell in a go-bitfield Bitlist64 (64 cells per word).
//   - Compute the linear index row*width + col in exactly one place (offset),
//     shared by indexOf and walk.
//   - Return sentinel errors at the public surface instead of panicking.
//
// Complexity quicksheet:
//   - New: O(W*H/64); Get/Put: O(1); Clone/Equal/Count: O(W*H).

package bit2

import (
	"fmt"
	"math"
	"strings"

	"github.com/prysmaticlabs/go-bitfield"
)

// MaxCells bounds width×height for a single grid (256 MiB of packed bits).
const MaxCells = math.MaxInt32

// ---------- error context tags ----------

const (
	ctxGet = "Get"
	ctxPut = "Put"
)

// gridErrorf wraps a sentinel with the method name and the offending
// coordinates, e.g. "Grid.Put(3,7): bit2: index out of bounds".
func gridErrorf(method string, col, row int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, col, row, err)
}

// Grid is a Width×Height array of bits.
//   - width, height are fixed at construction.
//   - bits holds width*height cells in row-major order; nil after Free.
type Grid struct {
	width, height int
	bits          *bitfield.Bitlist64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid)(nil)

// New creates a width×height grid with every cell set to 0.
//
// Implementation:
//   - Stage 1: validate width>0 && height>0; else ErrInvalidDimension.
//   - Stage 2: reject width*height > MaxCells before multiplying; else ErrAllocation.
//   - Stage 3: allocate the packed store.
//
// Complexity: Time O(W*H/64), Space O(W*H/64).
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimension)
	}
	// Division form avoids overflowing int on hostile header values.
	if width > MaxCells/height {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrAllocation)
	}

	return &Grid{
		width:  width,
		height: height,
		bits:   bitfield.NewBitlist64(uint64(width * height)),
	}, nil
}

// FromRows builds a grid from a rectangular slice of 0/1 rows, where
// rows[r][c] becomes cell (c, r).
// Returns ErrInvalidDimension for an empty input, ErrNonRectangular for
// jagged rows and ErrInvalidValue for any value other than 0 or 1.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimension)
	}
	w := len(rows[0])
	for _, r := range rows {
		if len(r) != w {
			return nil, fmt.Errorf("FromRows: %w", ErrNonRectangular)
		}
	}
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for row, r := range rows {
		for col, v := range r {
			if _, err = g.Put(col, row, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Width returns the number of columns. Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows. Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width()*Height(). Complexity: O(1).
func (g *Grid) Len() int { return g.width * g.height }

// InBounds reports whether (col, row) addresses a cell of the grid.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// IsBorder reports whether (col, row) lies on row 0, the last row,
// column 0 or the last column. Out-of-bounds cells are not border cells.
func (g *Grid) IsBorder(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}

	return col == 0 || row == 0 || col == g.width-1 || row == g.height-1
}

// indexOf validates (col, row) and returns its row-major offset.
//
// Errors:
//   - ErrReleased after Free.
//   - ErrOutOfBounds when either coordinate is outside the grid.
func (g *Grid) indexOf(col, row int) (uint64, error) {
	if g.bits == nil {
		return 0, ErrReleased
	}
	if !g.InBounds(col, row) {
		return 0, ErrOutOfBounds
	}

	return g.offset(col, row), nil
}

// offset is the row-major position of (col, row). It does not check bounds.
func (g *Grid) offset(col, row int) uint64 {
	return uint64(row*g.width + col)
}

// at reads the bit at a validated offset.
func (g *Grid) at(idx uint64) int {
	if g.bits.BitAt(idx) {
		return 1
	}

	return 0
}

// Get returns the bit stored at (col, row).
//
// Errors:
//   - ErrNilGrid, ErrReleased, ErrOutOfBounds (wrapped with coordinates).
//
// Complexity: O(1).
func (g *Grid) Get(col, row int) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	idx, err := g.indexOf(col, row)
	if err != nil {
		return 0, gridErrorf(ctxGet, col, row, err)
	}

	return g.at(idx), nil
}

// Put stores bit at (col, row) and returns the bit it replaced, so callers
// can learn whether the cell was already in the requested state.
//
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: reject bit ∉ {0,1}.
//   - Stage 3: read old bit, write new bit.
//
// Errors:
//   - ErrNilGrid, ErrReleased, ErrOutOfBounds, ErrInvalidValue.
//
// Complexity: O(1).
func (g *Grid) Put(col, row, bit int) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	idx, err := g.indexOf(col, row)
	if err != nil {
		return 0, gridErrorf(ctxPut, col, row, err)
	}
	if bit != 0 && bit != 1 {
		return 0, gridErrorf(ctxPut, col, row, ErrInvalidValue)
	}
	prev := g.at(idx)
	g.bits.SetBitAt(idx, bit == 1)

	return prev, nil
}

// Count returns the number of cells holding 1. A released grid counts 0.
func (g *Grid) Count() int {
	if g == nil || g.bits == nil {
		return 0
	}

	return int(g.bits.Count())
}

// Free releases the backing store. Get and Put return ErrReleased afterwards
// and traversals visit nothing. Free is idempotent.
func (g *Grid) Free() {
	if g == nil {
		return
	}
	g.bits = nil
}

// Released reports whether Free has been called. A nil grid counts as
// released.
func (g *Grid) Released() bool { return g == nil || g.bits == nil }

// Clone returns an independent copy with the same dimensions and bits.
// Cloning a released grid returns ErrReleased.
func (g *Grid) Clone() (*Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.bits == nil {
		return nil, fmt.Errorf("Clone: %w", ErrReleased)
	}

	return &Grid{width: g.width, height: g.height, bits: g.bits.Clone()}, nil
}

// Equal reports whether g and other have the same dimensions and bits.
// Released grids are equal to nothing.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil || g.bits == nil || other.bits == nil {
		return false
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	n := uint64(g.Len())
	for i := uint64(0); i < n; i++ {
		if g.bits.BitAt(i) != other.bits.BitAt(i) {
			return false
		}
	}

	return true
}

// Rows copies the grid out as rows[row][col]. A released grid yields nil.
func (g *Grid) Rows() [][]int {
	if g == nil || g.bits == nil {
		return nil
	}
	out := make([][]int, g.height)
	for row := range out {
		out[row] = make([]int, g.width)
	}
	g.walk(RowMajorOrder, func(col, row int, bit int) bool {
		out[row][col] = bit
		return true
	})

	return out
}

// String renders one line per row with cells separated by spaces.
// Intended for diagnostics and test failure messages.
func (g *Grid) String() string {
	if g == nil {
		return "<nil>"
	}
	if g.bits == nil {
		return fmt.Sprintf("<released %dx%d>", g.width, g.height)
	}
	var sb strings.Builder
	g.walk(RowMajorOrder, func(col, row int, bit int) bool {
		if col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('0' + bit))
		if col == g.width-1 {
			sb.WriteByte('\n')
		}
		return true
	})

	return sb.String()
}
