// SPDX-License-Identifier: MIT

package pnm

import "github.com/pkg/errors"

// ErrMalformedInput is wrapped by every decoding error caused by the input
// itself: wrong magic number, bad dimensions, pixel values outside the
// allowed range, or a pixel count different from width×height.
var ErrMalformedInput = errors.New("pnm: malformed input")
