// Package unblack is a small toolkit for cleaning scanned bilevel images:
// it removes the black edges a scanner leaves around a page while keeping
// everything printed inside it.
//
// 🚀 What is in the module?
//
//	Packages, leaf first:
//		• bit2/      — packed Width×Height bit grid (one bit per pixel) with
//		               row-major and column-major traversals
//		• unblack/   — iterative flood fill that whitens every black pixel
//		               4-connected to the border
//		• gridgraph/ — 4-connected component analysis of a grid snapshot
//		• uarray2/   — generic Width×Height array used for graymaps
//		• pnm/       — plain PBM (P1) and PGM (P2) codecs
//		• raster/    — image.Gray and BMP export of a grid
//		• sudoku/    — solved-board checker for 9×9 plain PGM boards
//		• cmdutil/   — flags, YAML flag files and logrus setup for the commands
//
// Commands:
//
//	cmd/unblackedges — PBM in, PBM out, black edges removed
//	cmd/sudoku       — exit status 0 for a solved board, 1 otherwise
//
// Quick ASCII example (1 = black):
//
//	1 1 1 1 1        0 0 0 0 0
//	1 0 0 0 1        0 0 0 0 0
//	1 0 1 0 1   ──▶  0 0 1 0 0
//	1 0 0 0 1        0 0 0 0 0
//	1 1 1 1 1        0 0 0 0 0
//
// The frame touches the border and is cleared; the dot does not and stays.
//
//	go install github.com/katalvlaran/unblack/cmd/unblackedges@latest
package unblack
