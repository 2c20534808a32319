// SPDX-License-Identifier: MIT

package unblack

import (
	"fmt"

	"github.com/katalvlaran/unblack/bit2"
	"github.com/sirupsen/logrus"
)

// neighborOffsets lists the 4-connected (col, row) deltas in visiting order:
// top, right, bottom, left.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// clearer holds the state of one Clear call. The worklist is shared by every
// seed of the call and emptied between them.
type clearer struct {
	grid  *bit2.Grid
	opts  Options
	stack worklist
}

// Clear whitens, in place, every black pixel of g reachable from a border
// pixel through 4-connected black pixels. Black pixels whose component does
// not touch the border are left unchanged.
//
// Behavior:
//  1. Scan g in opts.Order; skip white cells and non-border cells. Cells
//     whitened by an earlier component are read as white when reached.
//  2. For each black border cell, run the flood-clear from that seed.
//  3. Stop at the first grid error and return it with the partial Result.
//
// Running Clear twice is the same as running it once.
func Clear(g *bit2.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, bit2.ErrNilGrid
	}
	if g.Released() {
		return Result{}, fmt.Errorf("unblack: %w", bit2.ErrReleased)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	c := &clearer{grid: g, opts: o}
	var res Result
	for cell := range g.Cells(o.Order) {
		if cell.Bit != Black || !g.IsBorder(cell.Col, cell.Row) {
			continue
		}
		n, err := c.flood(cell.Col, cell.Row)
		res.Cleared += n
		if err != nil {
			return res, err
		}
		res.Components++
		if o.Logger != nil {
			o.Logger.WithFields(logrus.Fields{
				"seedCol": cell.Col,
				"seedRow": cell.Row,
				"pixels":  n,
			}).Debug("Cleared border component")
		}
	}

	return res, nil
}

// ClearFrom flood-clears the 4-connected black component containing
// (col, row) and returns the number of pixels whitened. The seed does not
// need to be a border cell. A white seed clears nothing.
//
// Errors:
//   - bit2.ErrNilGrid if g is nil.
//   - bit2.ErrOutOfBounds if the seed lies outside g.
func ClearFrom(g *bit2.Grid, col, row int, opts ...Option) (int, error) {
	if g == nil {
		return 0, bit2.ErrNilGrid
	}
	bit, err := g.Get(col, row)
	if err != nil {
		return 0, fmt.Errorf("unblack: seed: %w", err)
	}
	if bit != Black {
		return 0, nil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	c := &clearer{grid: g, opts: o}

	return c.flood(col, row)
}

// flood clears the component of a seed known to be black.
//
// The seed is whitened before its neighbors are examined, and only neighbors
// that are still black get pushed, so a white cell is the visited marker.
// A cell pushed twice (by two neighbors before either was popped) is
// already white on its second pop and is skipped.
func (c *clearer) flood(col, row int) (int, error) {
	c.stack.reset()
	defer c.stack.reset()

	cleared := 0
	whitened, err := c.whiten(col, row)
	if err != nil {
		return cleared, err
	}
	if whitened {
		cleared++
	}
	if err = c.pushNeighbors(col, row); err != nil {
		return cleared, err
	}

	for !c.stack.empty() {
		p := c.stack.pop()
		whitened, err = c.whiten(p.col, p.row)
		if err != nil {
			return cleared, err
		}
		if !whitened {
			continue
		}
		cleared++
		if err = c.pushNeighbors(p.col, p.row); err != nil {
			return cleared, err
		}
	}

	return cleared, nil
}

// whiten sets (col, row) to white and reports whether it was black.
func (c *clearer) whiten(col, row int) (bool, error) {
	prev, err := c.grid.Put(col, row, White)
	if err != nil {
		return false, fmt.Errorf("unblack: clear (%d,%d): %w", col, row, err)
	}
	if prev != Black {
		return false, nil
	}
	if c.opts.OnClear != nil {
		c.opts.OnClear(col, row)
	}

	return true, nil
}

// pushNeighbors pushes the in-bounds, still-black 4-neighbors of (col, row)
// in top, right, bottom, left order.
func (c *clearer) pushNeighbors(col, row int) error {
	for _, d := range neighborOffsets {
		nc, nr := col+d[0], row+d[1]
		if !c.grid.InBounds(nc, nr) {
			continue
		}
		bit, err := c.grid.Get(nc, nr)
		if err != nil {
			return fmt.Errorf("unblack: neighbor (%d,%d): %w", nc, nr, err)
		}
		if bit == Black {
			c.stack.push(point{col: nc, row: nr})
		}
	}

	return nil
}
