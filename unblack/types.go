// SPDX-License-Identifier: MIT

package unblack

import (
	"github.com/katalvlaran/unblack/bit2"
	"github.com/sirupsen/logrus"
)

// Pixel values of a bilevel grid.
const (
	White = 0
	Black = 1
)

// Option configures optional behavior of Clear.
type Option func(*Options)

// Options holds the configurable parameters of a Clear pass.
type Options struct {
	// Order is the scan order used to find black border seeds. It changes only
	// the order in which independent border components are erased, never the
	// final grid. Default bit2.RowMajorOrder.
	Order bit2.Order

	// OnClear, if non-nil, is called once for every pixel turned white.
	OnClear func(col, row int)

	// Logger, if non-nil, receives a debug entry per erased component.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with row-major scanning, no hook and no logger.
func DefaultOptions() Options {
	return Options{
		Order:   bit2.RowMajorOrder,
		OnClear: nil,
		Logger:  nil,
	}
}

// WithScanOrder sets the seed scan order.
func WithScanOrder(order bit2.Order) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// WithOnClear installs fn as a per-pixel hook.
func WithOnClear(fn func(col, row int)) Option {
	return func(o *Options) {
		o.OnClear = fn
	}
}

// WithLogger sets the logger used for per-component debug output.
// Passing nil disables logging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result summarizes a Clear pass.
type Result struct {
	// Cleared is the number of pixels turned from black to white.
	Cleared int
	// Components is the number of border-connected black components erased.
	Components int
}
