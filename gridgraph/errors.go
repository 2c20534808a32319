// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)
