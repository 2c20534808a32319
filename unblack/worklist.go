// SPDX-License-Identifier: MIT

package unblack

// point is a coordinate waiting to be visited by the flood fill.
type point struct {
	col, row int
}

// worklist is a LIFO stack of points held by value, so pushes do not
// allocate per pixel once the backing slice has grown.
type worklist struct {
	items []point
}

func (w *worklist) push(p point) { w.items = append(w.items, p) }

// pop removes and returns the most recently pushed point.
// Callers must check empty first.
func (w *worklist) pop() point {
	last := len(w.items) - 1
	p := w.items[last]
	w.items = w.items[:last]
	return p
}

func (w *worklist) empty() bool { return len(w.items) == 0 }

func (w *worklist) len() int { return len(w.items) }

// reset empties the stack but keeps its capacity for the next seed.
func (w *worklist) reset() { w.items = w.items[:0] }
