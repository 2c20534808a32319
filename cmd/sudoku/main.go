// SPDX-License-Identifier: MIT

// Package main implements sudoku, which reads a 9×9 plain PGM board and
// exits 0 if it is a solved sudoku and 1 otherwise. It prints nothing on
// standard output.
//
// Usage:
//
//	sudoku [flags] [board.pgm]
package main

import (
	"io"
	"os"

	"github.com/katalvlaran/unblack/cmdutil"
	"github.com/katalvlaran/unblack/pnm"
	"github.com/katalvlaran/unblack/sudoku"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "sudoku")

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	flags := cmdutil.WrapFlags(cmdutil.CommonFlags())
	return &cli.App{
		Name:      "sudoku",
		Usage:     "checks whether a plain PGM board is a solved sudoku",
		ArgsUsage: "[board.pgm]",
		Flags:     flags,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Before:    cmdutil.Before(flags),
		Action:    run,
	}
}

func run(ctx *cli.Context) error {
	in, err := cmdutil.OpenInput(ctx)
	if err != nil {
		return err
	}
	defer in.Close()

	gm, err := pnm.DecodeGraymap(in)
	if err != nil {
		return errors.Wrap(err, "could not read board")
	}
	board, err := sudoku.FromGraymap(gm)
	if err != nil {
		return err
	}
	if err = sudoku.Check(board); err != nil {
		return err
	}
	log.Debug("Board is solved")
	return nil
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		if errors.Is(err, sudoku.ErrInvalidBoard) {
			log.WithError(err).Debug("Board is not solved")
		} else {
			log.Error(err.Error())
		}
		os.Exit(1)
	}
}
