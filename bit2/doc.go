// SPDX-License-Identifier: MIT

// Package bit2 provides Grid, a fixed-size two-dimensional array of single
// bits stored one bit per cell in a packed backing store.
//
// What:
//
//   - Grid holds Width×Height cells addressed by (col, row), 0 ≤ col < Width,
//     0 ≤ row < Height. Cell (col, row) lives at linear index row*Width + col.
//   - Get/Put give O(1) random access; Put returns the bit it replaced.
//   - MapRowMajor/MapColMajor call a Visitor for every cell in a fixed order;
//     RowMajor/ColMajor expose the same orders as lazy iter.Seq values.
//
// Why:
//
//   - Bilevel scans (PBM images) are large; one bit per pixel keeps them
//     eight times smaller than a byte-per-pixel buffer.
//
// Complexity:
//
//   - New: O(W·H/64) words, zero-filled.
//   - Get, Put, InBounds, IsBorder: O(1).
//   - Map*/RowMajor/ColMajor: O(W·H).
//
// Errors:
//
//   - ErrInvalidDimension: width or height ≤ 0.
//   - ErrAllocation: width×height does not fit in MaxCells.
//   - ErrOutOfBounds: (col, row) outside the grid.
//   - ErrInvalidValue: a bit other than 0 or 1.
//   - ErrReleased: the grid was freed.
//   - ErrNilGrid: nil *Grid receiver or argument.
//
// A Grid is not safe for concurrent use; it has exactly one owner at a time.
package bit2
