// SPDX-License-Identifier: MIT

package sudoku

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/unblack/pnm"
	"github.com/katalvlaran/unblack/uarray2"
)

// Board geometry and digit range.
const (
	Size     = 9
	BoxSize  = 3
	MinDigit = 1
	MaxDigit = 9
)

var (
	// ErrMalformedBoard indicates input that is not a 9×9 board of digits 1..9.
	ErrMalformedBoard = errors.New("sudoku: malformed board")
	// ErrInvalidBoard indicates a well-formed board that is not solved.
	ErrInvalidBoard = errors.New("sudoku: board is not solved")
)

// FromGraymap validates gm as a board and returns its pixels.
// The header must declare 9×9 with maxval 9, and every sample must be a digit.
func FromGraymap(gm *pnm.Graymap) (*uarray2.Array[int], error) {
	if gm == nil || gm.Pixels == nil {
		return nil, fmt.Errorf("FromGraymap: nil graymap: %w", ErrMalformedBoard)
	}
	if gm.Width != Size || gm.Height != Size {
		return nil, fmt.Errorf("FromGraymap: board is %dx%d, want %dx%d: %w",
			gm.Width, gm.Height, Size, Size, ErrMalformedBoard)
	}
	if gm.MaxVal != MaxDigit {
		return nil, fmt.Errorf("FromGraymap: maxval %d, want %d: %w", gm.MaxVal, MaxDigit, ErrMalformedBoard)
	}
	for idx, v := range gm.Pixels.RowMajor() {
		if v < MinDigit || v > MaxDigit {
			return nil, fmt.Errorf("FromGraymap: cell (%d,%d) holds %d: %w", idx.Col, idx.Row, v, ErrMalformedBoard)
		}
	}

	return gm.Pixels, nil
}

// unit names a column, row or box for error messages.
type unit struct {
	kind  string
	index int
}

func (u unit) String() string { return fmt.Sprintf("%s %d", u.kind, u.index) }

// checker accumulates one line at a time, plus the three boxes a band of
// rows passes through, and remembers the first unit that failed.
type checker struct {
	line  [MaxDigit + 1]bool
	boxes [Size / BoxSize][MaxDigit + 1]bool
	bad   *unit
}

// mark records digit v in seen and reports whether it was new.
func mark(seen *[MaxDigit + 1]bool, v int) bool {
	if v < MinDigit || v > MaxDigit || seen[v] {
		return false
	}
	seen[v] = true

	return true
}

func (c *checker) fail(kind string, index int) {
	if c.bad == nil {
		c.bad = &unit{kind: kind, index: index}
	}
}

// lineVisitor checks one column (col-major traversal) or one row
// (row-major traversal); pos selects the coordinate that names the line.
func (c *checker) lineVisitor(kind string, colMajor bool) uarray2.Visitor[int] {
	return func(col, row int, _ *uarray2.Array[int], v *int) {
		line, pos := row, col
		if colMajor {
			line, pos = col, row
		}
		if pos == 0 {
			c.line = [MaxDigit + 1]bool{}
		}
		if !mark(&c.line, *v) {
			c.fail(kind, line)
		}
	}
}

// boxVisitor checks boxes during a row-major traversal: a band of BoxSize
// rows fills BoxSize boxes side by side.
func (c *checker) boxVisitor(col, row int, _ *uarray2.Array[int], v *int) {
	if col == 0 && row%BoxSize == 0 {
		c.boxes = [Size / BoxSize][MaxDigit + 1]bool{}
	}
	b := col / BoxSize
	if !mark(&c.boxes[b], *v) {
		c.fail("box", (row/BoxSize)*BoxSize+b)
	}
}

// Check returns nil when board is a solved sudoku. Otherwise it returns
// ErrInvalidBoard naming the first failing column, row or box, or
// ErrMalformedBoard when board is not 9×9.
func Check(board *uarray2.Array[int]) error {
	if board == nil || board.Width() != Size || board.Height() != Size {
		return fmt.Errorf("Check: %w", ErrMalformedBoard)
	}
	c := &checker{}
	board.MapColMajor(c.lineVisitor("column", true))
	if c.bad == nil {
		board.MapRowMajor(c.lineVisitor("row", false))
	}
	if c.bad == nil {
		board.MapRowMajor(c.boxVisitor)
	}
	if c.bad != nil {
		return fmt.Errorf("Check: %s: %w", c.bad, ErrInvalidBoard)
	}

	return nil
}

// Valid reports whether board is a solved sudoku.
func Valid(board *uarray2.Array[int]) bool {
	return Check(board) == nil
}
