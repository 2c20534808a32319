// SPDX-License-Identifier: MIT

package pnm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/unblack/bit2"
	"github.com/pkg/errors"
)

// Magic numbers of the supported plain formats.
const (
	MagicPlainBitmap  = "P1"
	MagicPlainGraymap = "P2"
)

// Header holds the fields common to every plain Netpbm header.
// MaxVal is 1 for bitmaps.
type Header struct {
	Magic         string
	Width, Height int
	MaxVal        int
}

// DecodeBitmap reads a plain PBM (P1) image into a new grid, where 1 is black.
//
// Errors wrap ErrMalformedInput for a wrong magic number, non-positive or
// unparsable dimensions, a pixel other than 0 or 1, too few or too many
// pixels; bit2.ErrAllocation when the dimensions are too large to store.
func DecodeBitmap(r io.Reader) (*bit2.Grid, error) {
	s := newScanner(r)
	h, err := s.header(MagicPlainBitmap)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode bitmap header")
	}
	g, err := bit2.New(h.Width, h.Height)
	if err != nil {
		return nil, errors.Wrapf(err, "could not allocate %dx%d bitmap", h.Width, h.Height)
	}
	for row := 0; row < h.Height; row++ {
		for col := 0; col < h.Width; col++ {
			bit, err := s.digit(pixel(col, row))
			if err != nil {
				g.Free()
				return nil, err
			}
			if _, err = g.Put(col, row, bit); err != nil {
				g.Free()
				return nil, err
			}
		}
	}
	if err = s.expectEOF(); err != nil {
		g.Free()
		return nil, err
	}

	return g, nil
}

// EncodeBitmap writes g as a plain PBM (P1) image: the magic number, then
// "width height", then one line per row with pixels separated by single
// spaces.
func EncodeBitmap(w io.Writer, g *bit2.Grid) error {
	if g == nil {
		return bit2.ErrNilGrid
	}
	if g.Released() {
		return errors.Wrap(bit2.ErrReleased, "could not encode bitmap")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n", MagicPlainBitmap, g.Width(), g.Height())
	last := g.Width() - 1
	g.MapRowMajor(func(col, _ int, _ *bit2.Grid, bit int) {
		bw.WriteByte(byte('0' + bit))
		if col == last {
			bw.WriteByte('\n')
		} else {
			bw.WriteByte(' ')
		}
	})
	// bufio.Writer keeps the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "could not write bitmap")
	}

	return nil
}
