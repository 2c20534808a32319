// SPDX-License-Identifier: MIT

package gridgraph

import "slices"

// ConnectedComponents finds all 4-connected regions of black cells.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS order. Components are ordered by their first cell in
// row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
// The result is freshly built and owned by the caller.
func (gg *GridGraph) ConnectedComponents() [][]int {
	return gg.label()
}

// components labels the snapshot once and returns the shared result.
// Callers must not modify it.
func (gg *GridGraph) components() [][]int {
	gg.compsOnce.Do(func() { gg.comps = gg.label() })
	return gg.comps
}

// label runs the BFS labelling pass.
func (gg *GridGraph) label() [][]int {
	seen := make([]bool, len(gg.black))
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if !gg.black[i0] || seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Black(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Component returns a copy of the i-th component of ConnectedComponents.
// The snapshot is labelled on the first call only; later calls cost
// O(len(component)).
// Returns ErrComponentIndex if i is out of range.
func (gg *GridGraph) Component(i int) ([]int, error) {
	comps := gg.components()
	if i < 0 || i >= len(comps) {
		return nil, ErrComponentIndex
	}

	return slices.Clone(comps[i]), nil
}

// TouchesBorder reports whether any cell of comp lies on the border.
func (gg *GridGraph) TouchesBorder(comp []int) bool {
	for _, idx := range comp {
		if gg.IsBorder(gg.Coordinate(idx)) {
			return true
		}
	}

	return false
}

// BorderComponents returns the components that contain a border cell.
func (gg *GridGraph) BorderComponents() [][]int {
	return gg.filter(true)
}

// InteriorComponents returns the components with no border cell.
func (gg *GridGraph) InteriorComponents() [][]int {
	return gg.filter(false)
}

func (gg *GridGraph) filter(border bool) [][]int {
	var out [][]int
	for _, comp := range gg.components() {
		if gg.TouchesBorder(comp) == border {
			out = append(out, slices.Clone(comp))
		}
	}

	return out
}

// Summary aggregates component statistics of a snapshot.
type Summary struct {
	BlackPixels        int // black cells in the snapshot
	Components         int // all 4-connected black components
	BorderComponents   int // components touching the border
	InteriorComponents int // components not touching the border
	InteriorPixels     int // black cells in interior components
}

// Summarize computes a Summary in a single component pass.
func (gg *GridGraph) Summarize() Summary {
	var s Summary
	for _, comp := range gg.components() {
		s.Components++
		s.BlackPixels += len(comp)
		if gg.TouchesBorder(comp) {
			s.BorderComponents++
			continue
		}
		s.InteriorComponents++
		s.InteriorPixels += len(comp)
	}

	return s
}
