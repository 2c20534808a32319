// SPDX-License-Identifier: MIT

// Package raster converts a bit2.Grid into an image.Gray and writes it as BMP,
// giving a viewable preview of a bitmap before or after edge clearing.
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/katalvlaran/unblack/bit2"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Interpretation says which bit value is drawn black.
// The names follow the usual binary-image convention.
type Interpretation int

const (
	// Chocolate draws 1 as black and 0 as white. This is the PBM convention.
	Chocolate Interpretation = iota
	// Vanilla draws 1 as white and 0 as black.
	Vanilla
)

// Image renders g as an 8-bit grayscale image of the same size using the
// Chocolate interpretation.
func Image(g *bit2.Grid) (*image.Gray, error) {
	return ImageAs(g, Chocolate)
}

// ImageAs renders g with the given interpretation.
func ImageAs(g *bit2.Grid, in Interpretation) (*image.Gray, error) {
	if g == nil {
		return nil, bit2.ErrNilGrid
	}
	if g.Released() {
		return nil, errors.Wrap(bit2.ErrReleased, "could not render grid")
	}
	black, white := color.Gray{Y: 0x00}, color.Gray{Y: 0xFF}
	if in == Vanilla {
		black, white = white, black
	}
	img := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	for cell := range g.RowMajor() {
		c := white
		if cell.Bit == 1 {
			c = black
		}
		img.SetGray(cell.Col, cell.Row, c)
	}

	return img, nil
}

// WriteBMP encodes g as a grayscale BMP.
func WriteBMP(w io.Writer, g *bit2.Grid) error {
	img, err := Image(g)
	if err != nil {
		return err
	}
	if err = bmp.Encode(w, img); err != nil {
		return errors.Wrap(err, "could not encode bmp")
	}

	return nil
}
