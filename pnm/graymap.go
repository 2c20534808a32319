// SPDX-License-Identifier: MIT

package pnm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/unblack/uarray2"
	"github.com/pkg/errors"
)

// MaxGrayValue is the largest maxval a graymap header may declare.
const MaxGrayValue = 65535

// maxGrayPixels bounds width×height of a decoded graymap.
const maxGrayPixels = 1 << 26

// Graymap is a decoded plain PGM (P2) image.
type Graymap struct {
	Header
	// Pixels holds Width×Height samples in [0, MaxVal].
	Pixels *uarray2.Array[int]
}

// DecodeGraymap reads a plain PGM (P2) image.
//
// Errors wrap ErrMalformedInput for a wrong magic number, bad dimensions,
// a maxval outside [1, MaxGrayValue], a sample above maxval, or a sample
// count different from width×height.
func DecodeGraymap(r io.Reader) (*Graymap, error) {
	s := newScanner(r)
	h, err := s.header(MagicPlainGraymap)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode graymap header")
	}
	if h.MaxVal, err = s.number(field("maxval")); err != nil {
		return nil, errors.Wrap(err, "could not decode graymap header")
	}
	if h.MaxVal < 1 || h.MaxVal > MaxGrayValue {
		return nil, errors.Wrapf(ErrMalformedInput, "maxval %d outside [1, %d]", h.MaxVal, MaxGrayValue)
	}
	if h.Width > maxGrayPixels/h.Height {
		return nil, errors.Wrapf(ErrMalformedInput, "graymap %dx%d too large", h.Width, h.Height)
	}
	pix, err := uarray2.New[int](h.Width, h.Height)
	if err != nil {
		return nil, errors.Wrapf(err, "could not allocate %dx%d graymap", h.Width, h.Height)
	}
	for row := 0; row < h.Height; row++ {
		for col := 0; col < h.Width; col++ {
			v, err := s.number(pixel(col, row))
			if err != nil {
				return nil, err
			}
			if v > h.MaxVal {
				return nil, errors.Wrapf(ErrMalformedInput, "%s: sample %d exceeds maxval %d", pixel(col, row), v, h.MaxVal)
			}
			if err = pix.Set(col, row, v); err != nil {
				return nil, err
			}
		}
	}
	if err = s.expectEOF(); err != nil {
		return nil, err
	}

	return &Graymap{Header: h, Pixels: pix}, nil
}

// EncodeGraymap writes gm as a plain PGM (P2) image, one row per line.
func EncodeGraymap(w io.Writer, gm *Graymap) error {
	if gm == nil || gm.Pixels == nil {
		return errors.New("pnm: nil graymap")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", MagicPlainGraymap, gm.Pixels.Width(), gm.Pixels.Height(), gm.MaxVal)
	last := gm.Pixels.Width() - 1
	buf := make([]byte, 0, 8)
	gm.Pixels.MapRowMajor(func(col, _ int, _ *uarray2.Array[int], v *int) {
		buf = strconv.AppendInt(buf[:0], int64(*v), 10)
		bw.Write(buf)
		if col == last {
			bw.WriteByte('\n')
		} else {
			bw.WriteByte(' ')
		}
	})
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "could not write graymap")
	}

	return nil
}
