// SPDX-License-Identifier: MIT

package uarray2

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrInvalidDimension is returned when width or height is not positive.
	ErrInvalidDimension = errors.New("uarray2: dimensions must be > 0")
	// ErrOutOfBounds indicates a column or row outside the array extents.
	ErrOutOfBounds = errors.New("uarray2: index out of bounds")
)

// Index is a (col, row) position.
type Index struct {
	Col, Row int
}

// Visitor is called once per element by MapRowMajor and MapColMajor.
// elem points into the array, so the visitor may update it in place.
type Visitor[T any] func(col, row int, a *Array[T], elem *T)

// Array is a width×height array of T.
// data has length width*height; element (col, row) is data[row*width+col].
type Array[T any] struct {
	width, height int
	data          []T
}

// New creates a width×height array of zero values.
// Returns ErrInvalidDimension if either extent is not positive.
// Complexity: O(W*H).
func New[T any](width, height int) (*Array[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimension)
	}

	return &Array[T]{width: width, height: height, data: make([]T, width*height)}, nil
}

// Width returns the number of columns.
func (a *Array[T]) Width() int { return a.width }

// Height returns the number of rows.
func (a *Array[T]) Height() int { return a.height }

// indexOf computes the row-major offset or returns ErrOutOfBounds.
func (a *Array[T]) indexOf(col, row int) (int, error) {
	if col < 0 || col >= a.width || row < 0 || row >= a.height {
		return 0, ErrOutOfBounds
	}

	return a.offset(col, row), nil
}

// offset is the row-major position of (col, row). It does not check bounds.
func (a *Array[T]) offset(col, row int) int {
	return row*a.width + col
}

// At returns a pointer to element (col, row).
func (a *Array[T]) At(col, row int) (*T, error) {
	off, err := a.indexOf(col, row)
	if err != nil {
		return nil, fmt.Errorf("Array.At(%d,%d): %w", col, row, err)
	}

	return &a.data[off], nil
}

// Get returns a copy of element (col, row).
func (a *Array[T]) Get(col, row int) (T, error) {
	var zero T
	off, err := a.indexOf(col, row)
	if err != nil {
		return zero, fmt.Errorf("Array.Get(%d,%d): %w", col, row, err)
	}

	return a.data[off], nil
}

// Set stores v at (col, row).
func (a *Array[T]) Set(col, row int, v T) error {
	off, err := a.indexOf(col, row)
	if err != nil {
		return fmt.Errorf("Array.Set(%d,%d): %w", col, row, err)
	}
	a.data[off] = v

	return nil
}

// MapRowMajor calls visit for every element, row 0 first.
func (a *Array[T]) MapRowMajor(visit Visitor[T]) {
	for row := 0; row < a.height; row++ {
		for col := 0; col < a.width; col++ {
			visit(col, row, a, &a.data[a.offset(col, row)])
		}
	}
}

// MapColMajor calls visit for every element, column 0 first.
func (a *Array[T]) MapColMajor(visit Visitor[T]) {
	for col := 0; col < a.width; col++ {
		for row := 0; row < a.height; row++ {
			visit(col, row, a, &a.data[a.offset(col, row)])
		}
	}
}

// RowMajor returns a lazy sequence of (Index, value) pairs, row 0 first.
func (a *Array[T]) RowMajor() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for row := 0; row < a.height; row++ {
			for col := 0; col < a.width; col++ {
				if !yield(Index{Col: col, Row: row}, a.data[a.offset(col, row)]) {
					return
				}
			}
		}
	}
}
