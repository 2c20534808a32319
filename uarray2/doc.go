// SPDX-License-Identifier: MIT

// Package uarray2 provides Array, a fixed-size two-dimensional array of
// values of any type, stored row-major in one flat slice and addressed by
// (col, row).
//
// Array mirrors bit2.Grid's addressing and traversal orders for element
// types wider than a bit, such as the digits of a sudoku board.
package uarray2
