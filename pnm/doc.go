// SPDX-License-Identifier: MIT

// Package pnm reads and writes the plain (ASCII) Netpbm formats used by the
// command-line tools: P1 bitmaps into a bit2.Grid and P2 graymaps into a
// uarray2.Array[int].
//
// Both decoders consume the whole image before returning, so a malformed
// file is rejected before any output is produced. Whitespace-separated
// header tokens may be interleaved with '#' comments running to end of line.
// In P1 data the 0/1 digits may also appear without separators.
//
// Errors returned for bad input wrap ErrMalformedInput; match them with
// errors.Is.
package pnm
