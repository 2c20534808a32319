// SPDX-License-Identifier: MIT

package pnm

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

// maxTokenLen bounds a single header or sample token.
const maxTokenLen = 32

// label names the value being read in error messages. Pixel labels are
// formatted only when an error is built.
type label struct {
	name     string
	col, row int
}

func field(name string) label { return label{name: name} }

func pixel(col, row int) label { return label{col: col, row: row} }

func (l label) String() string {
	if l.name != "" {
		return l.name
	}
	return fmt.Sprintf("pixel (%d,%d)", l.col, l.row)
}

// scanner tokenizes plain Netpbm input. buf is reused by every token.
type scanner struct {
	r   *bufio.Reader
	buf []byte
}

func newScanner(r io.Reader) *scanner {
	return &scanner{r: bufio.NewReader(r), buf: make([]byte, 0, maxTokenLen)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skipSpace consumes whitespace and comments. It returns io.EOF when the
// input ends before another token starts.
func (s *scanner) skipSpace() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case b == '#':
			for {
				if _, err = s.r.ReadSlice('\n'); err != bufio.ErrBufferFull {
					break
				}
			}
			if err != nil {
				return err
			}
		case isSpace(b):
		default:
			return s.r.UnreadByte()
		}
	}
}

// token returns the next whitespace-delimited token. The slice is only
// valid until the next call.
func (s *scanner) token(what label) ([]byte, error) {
	if err := s.skipSpace(); err != nil {
		return nil, s.fail(err, what)
	}
	s.buf = s.buf[:0]
	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not read %s", what)
		}
		if isSpace(b) || b == '#' {
			if err = s.r.UnreadByte(); err != nil {
				return nil, errors.Wrapf(err, "could not read %s", what)
			}
			break
		}
		if len(s.buf) == maxTokenLen {
			return nil, errors.Wrapf(ErrMalformedInput, "%s token longer than %d bytes", what, maxTokenLen)
		}
		s.buf = append(s.buf, b)
	}

	return s.buf, nil
}

// number reads a non-negative decimal integer token.
func (s *scanner) number(what label) (int, error) {
	tok, err := s.token(what)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, b := range tok {
		d := int(b - '0')
		if b < '0' || b > '9' || n > (math.MaxInt-d)/10 {
			return 0, errors.Wrapf(ErrMalformedInput, "%s: %q is not a non-negative integer", what, tok)
		}
		n = n*10 + d
	}

	return n, nil
}

// digit reads a single '0' or '1' character, the unit of P1 pixel data.
func (s *scanner) digit(what label) (int, error) {
	if err := s.skipSpace(); err != nil {
		return 0, s.fail(err, what)
	}
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, s.fail(err, what)
	}
	switch b {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	default:
		return 0, errors.Wrapf(ErrMalformedInput, "%s: %q is not 0 or 1", what, b)
	}
}

// expectEOF fails when anything but whitespace and comments remains.
func (s *scanner) expectEOF() error {
	err := s.skipSpace()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "could not read trailing data")
	}

	return errors.Wrap(ErrMalformedInput, "more samples than width×height")
}

// fail maps an end of input to ErrMalformedInput and wraps other I/O errors.
func (s *scanner) fail(err error, what label) error {
	if err == io.EOF {
		return errors.Wrapf(ErrMalformedInput, "unexpected end of input reading %s", what)
	}

	return errors.Wrapf(err, "could not read %s", what)
}

// header reads the magic number and dimensions shared by every format.
func (s *scanner) header(magic string) (Header, error) {
	tok, err := s.token(field("magic number"))
	if err != nil {
		return Header{}, err
	}
	if string(tok) != magic {
		return Header{}, errors.Wrapf(ErrMalformedInput, "magic number %q, want %q", tok, magic)
	}
	h := Header{Magic: magic}
	if h.Width, err = s.number(field("width")); err != nil {
		return Header{}, err
	}
	if h.Height, err = s.number(field("height")); err != nil {
		return Header{}, err
	}
	if h.Width == 0 || h.Height == 0 {
		return Header{}, errors.Wrapf(ErrMalformedInput, "dimensions %dx%d must be positive", h.Width, h.Height)
	}

	return h, nil
}
