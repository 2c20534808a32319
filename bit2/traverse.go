// SPDX-License-Identifier: MIT

package bit2

import (
	"fmt"
	"iter"
)

// Order selects the cell visitation order of a full-grid traversal.
type Order int

const (
	// RowMajorOrder visits row 0 from column 0 to Width-1, then row 1, and so on.
	RowMajorOrder Order = iota
	// ColMajorOrder visits column 0 from row 0 to Height-1, then column 1, and so on.
	ColMajorOrder
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case RowMajorOrder:
		return "row-major"
	case ColMajorOrder:
		return "col-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Cell is one element of a traversal: its coordinates and the bit it held
// at the moment it was yielded.
type Cell struct {
	Col, Row int
	Bit      int
}

// Visitor is called once per cell by MapRowMajor and MapColMajor.
// It may mutate g; changes are visible to the cells visited after it.
type Visitor func(col, row int, g *Grid, bit int)

// walk drives every traversal. Each bit is read right before fn sees it,
// so mutations made by fn show up in later cells. walk stops early when fn
// returns false or when the grid is released mid-traversal.
func (g *Grid) walk(order Order, fn func(col, row int, bit int) bool) {
	if g == nil || g.bits == nil {
		return
	}
	outer, inner := g.height, g.width
	if order == ColMajorOrder {
		outer, inner = g.width, g.height
	}
	for i := 0; i < outer; i++ {
		for j := 0; j < inner; j++ {
			col, row := j, i
			if order == ColMajorOrder {
				col, row = i, j
			}
			if g.bits == nil {
				return
			}
			if !fn(col, row, g.at(g.offset(col, row))) {
				return
			}
		}
	}
}

// Traverse calls visit for every cell in the given order.
// Complexity: O(W*H) plus the cost of visit.
func (g *Grid) Traverse(order Order, visit Visitor) {
	g.walk(order, func(col, row int, bit int) bool {
		visit(col, row, g, bit)
		return true
	})
}

// MapRowMajor calls visit for every cell, row 0 first.
func (g *Grid) MapRowMajor(visit Visitor) { g.Traverse(RowMajorOrder, visit) }

// MapColMajor calls visit for every cell, column 0 first.
func (g *Grid) MapColMajor(visit Visitor) { g.Traverse(ColMajorOrder, visit) }

// Cells returns a lazy, restartable sequence of cells in the given order.
// Breaking out of a range loop stops the traversal.
func (g *Grid) Cells(order Order) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		g.walk(order, func(col, row int, bit int) bool {
			return yield(Cell{Col: col, Row: row, Bit: bit})
		})
	}
}

// RowMajor is Cells(RowMajorOrder).
func (g *Grid) RowMajor() iter.Seq[Cell] { return g.Cells(RowMajorOrder) }

// ColMajor is Cells(ColMajorOrder).
func (g *Grid) ColMajor() iter.Seq[Cell] { return g.Cells(ColMajorOrder) }
