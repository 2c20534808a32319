// SPDX-License-Identifier: MIT

// Package unblack clears every black pixel that is 4-connected to the border
// of a bit2.Grid, leaving interior content untouched.
//
// A pixel value of 1 is black, 0 is white. Clear scans the grid once and, for
// each black border cell it meets, flood-clears that cell's component with an
// explicit LIFO worklist instead of recursion, so very large scans cannot
// exhaust the goroutine stack.
//
// Key features:
//   - Clear(g, opts...): whiten all border-connected black pixels in place.
//   - ClearFrom(g, col, row): flood-clear a single component from one seed.
//   - Deterministic neighbor order: top, right, bottom, left.
//   - Hooks: WithOnClear is called once per whitened pixel.
//   - Diagnostics: Result counts pixels cleared and components erased;
//     WithLogger emits one debug line per erased component.
//
// Complexity:
//
//   - Time:   O(W×H); each pixel is whitened once and examined at most
//     once per neighbor.
//   - Memory: O(size of the largest border component) for the worklist.
//
// Errors:
//
//   - bit2.ErrNilGrid if g is nil; bit2.ErrReleased if g was freed.
//   - any grid error (e.g. bit2.ErrReleased), wrapped with the failing coordinate.
package unblack
