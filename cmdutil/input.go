// SPDX-License-Identifier: MIT

package cmdutil

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// ErrUsage is returned when a command gets more than one positional argument.
var ErrUsage = errors.New("expected at most one input file")

// OpenInput returns the command's input: the named file when one argument is
// given, the app's reader (standard input) when none is. The caller closes it.
func OpenInput(ctx *cli.Context) (io.ReadCloser, error) {
	switch ctx.NArg() {
	case 0:
		var r io.Reader = os.Stdin
		if ctx.App != nil && ctx.App.Reader != nil {
			r = ctx.App.Reader
		}
		return io.NopCloser(r), nil
	case 1:
		f, err := os.Open(ctx.Args().First())
		if err != nil {
			return nil, errors.Wrap(err, "could not open input")
		}
		return f, nil
	default:
		return nil, errors.Wrapf(ErrUsage, "got %d arguments", ctx.NArg())
	}
}
