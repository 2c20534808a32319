// SPDX-License-Identifier: MIT

package bit2

import "errors"

// Every message is prefixed with "bit2: ". Public methods wrap these
// sentinels with the method name and coordinates; match them with errors.Is.
var (
	// ErrInvalidDimension is returned when width or height is not positive.
	ErrInvalidDimension = errors.New("bit2: dimensions must be > 0")

	// ErrAllocation is returned when width×height cannot be backed by storage.
	ErrAllocation = errors.New("bit2: cannot allocate backing storage")

	// ErrOutOfBounds indicates a column or row outside the grid extents.
	ErrOutOfBounds = errors.New("bit2: index out of bounds")

	// ErrInvalidValue indicates an attempt to store a bit other than 0 or 1.
	ErrInvalidValue = errors.New("bit2: bit value must be 0 or 1")

	// ErrNonRectangular indicates rows of differing lengths in FromRows.
	ErrNonRectangular = errors.New("bit2: all rows must have the same length")

	// ErrReleased indicates use of a grid after Free.
	ErrReleased = errors.New("bit2: grid has been released")

	// ErrNilGrid indicates a nil *Grid.
	ErrNilGrid = errors.New("bit2: grid is nil")
)
