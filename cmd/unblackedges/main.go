// SPDX-License-Identifier: MIT

// Package main implements unblackedges, a filter that reads a plain PBM
// image, whitens every black pixel 4-connected to the image border, and
// writes the result as plain PBM to standard output.
//
// Usage:
//
//	unblackedges [flags] [file.pbm]
//
// With no file the image is read from standard input.
package main

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/unblack/bit2"
	"github.com/katalvlaran/unblack/cmdutil"
	"github.com/katalvlaran/unblack/gridgraph"
	"github.com/katalvlaran/unblack/pnm"
	"github.com/katalvlaran/unblack/raster"
	"github.com/katalvlaran/unblack/unblack"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "unblackedges")

var (
	// ScanOrderFlag selects the order in which border seeds are met.
	ScanOrderFlag = &cli.StringFlag{
		Name:  "scan-order",
		Usage: "Order of the border scan: row or col",
		Value: "row",
	}
	// ReportFlag logs component statistics before and after clearing.
	ReportFlag = &cli.BoolFlag{
		Name:  "report",
		Usage: "Log black pixel and component counts before and after clearing",
	}
	// BMPOutFlag names a file to receive a BMP preview of the cleared image.
	BMPOutFlag = &cli.StringFlag{
		Name:  "bmp-out",
		Usage: "Also write the cleared image as a BMP to this path",
	}
)

func parseOrder(s string) (bit2.Order, error) {
	switch s {
	case "row", "":
		return bit2.RowMajorOrder, nil
	case "col":
		return bit2.ColMajorOrder, nil
	default:
		return 0, errors.Errorf("unknown scan order %q", s)
	}
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	flags := cmdutil.WrapFlags(append([]cli.Flag{ScanOrderFlag, ReportFlag, BMPOutFlag}, cmdutil.CommonFlags()...))
	return &cli.App{
		Name:      "unblackedges",
		Usage:     "removes black edges from a plain PBM image",
		ArgsUsage: "[file.pbm]",
		Flags:     flags,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Before:    cmdutil.Before(flags),
		Action:    run,
	}
}

func run(ctx *cli.Context) error {
	order, err := parseOrder(ctx.String(ScanOrderFlag.Name))
	if err != nil {
		return err
	}
	in, err := cmdutil.OpenInput(ctx)
	if err != nil {
		return err
	}
	defer in.Close()

	grid, err := pnm.DecodeBitmap(in)
	if err != nil {
		return errors.Wrap(err, "could not read bitmap")
	}
	defer grid.Free()
	log.WithFields(logrus.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
		"packed": humanize.Bytes(uint64((grid.Len() + 7) / 8)),
	}).Debug("Decoded bitmap")

	if ctx.Bool(ReportFlag.Name) {
		if err = report(grid, "Before clearing"); err != nil {
			return err
		}
	}
	res, err := unblack.Clear(grid, unblack.WithScanOrder(order), unblack.WithLogger(log))
	if err != nil {
		return errors.Wrap(err, "could not clear edges")
	}
	log.WithFields(logrus.Fields{
		"cleared":    res.Cleared,
		"components": res.Components,
	}).Info("Cleared black edges")
	if ctx.Bool(ReportFlag.Name) {
		if err = report(grid, "After clearing"); err != nil {
			return err
		}
	}

	if path := ctx.String(BMPOutFlag.Name); path != "" {
		if err = writeBMP(path, grid); err != nil {
			return err
		}
	}

	return pnm.EncodeBitmap(ctx.App.Writer, grid)
}

func report(grid *bit2.Grid, msg string) error {
	gg, err := gridgraph.New(grid)
	if err != nil {
		return errors.Wrap(err, "could not analyse components")
	}
	s := gg.Summarize()
	log.WithFields(logrus.Fields{
		"blackPixels":        s.BlackPixels,
		"components":         s.Components,
		"borderComponents":   s.BorderComponents,
		"interiorComponents": s.InteriorComponents,
		"interiorPixels":     s.InteriorPixels,
	}).Info(msg)
	return nil
}

func writeBMP(path string, grid *bit2.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create bmp file")
	}
	if err = raster.WriteBMP(f, grid); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "could not close bmp file")
	}
	log.WithField("path", path).Debug("Wrote bmp preview")
	return nil
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
