// SPDX-License-Identifier: MIT

// Package sudoku checks whether a 9×9 board read from a plain graymap is a
// solved sudoku: every column, row and 3×3 box holds each digit 1..9 once.
//
// Check scans columns first, then rows, then boxes, and reports the first
// unit that repeats a digit. The board itself is a uarray2.Array[int].
package sudoku
