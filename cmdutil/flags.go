// SPDX-License-Identifier: MIT

package cmdutil

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

var (
	// VerbosityFlag defines the logrus level.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormatFlag specifies the log output format.
	LogFormatFlag = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Specify log formatting. Supports: text, json, fluentd.",
		Value: "text",
	}
	// LogFileFlag specifies the log output file name.
	LogFileFlag = &cli.StringFlag{
		Name:  "log-file",
		Usage: "Specify log file name, relative or absolute",
	}
	// ConfigFileFlag specifies the filepath to load flag values.
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config-file",
		Usage: "The filepath to a yaml file with flag values",
	}
)

// CommonFlags are the logging and configuration flags every command takes.
func CommonFlags() []cli.Flag {
	return []cli.Flag{VerbosityFlag, LogFormatFlag, LogFileFlag, ConfigFileFlag}
}

// WrapFlags so that they can be loaded from alternative sources.
func WrapFlags(flags []cli.Flag) []cli.Flag {
	wrapped := make([]cli.Flag, 0, len(flags))
	for _, f := range flags {
		switch f := f.(type) {
		case *cli.BoolFlag:
			wrapped = append(wrapped, altsrc.NewBoolFlag(f))
		case *cli.IntFlag:
			wrapped = append(wrapped, altsrc.NewIntFlag(f))
		case *cli.StringFlag:
			wrapped = append(wrapped, altsrc.NewStringFlag(f))
		case *cli.StringSliceFlag:
			wrapped = append(wrapped, altsrc.NewStringSliceFlag(f))
		case *cli.DurationFlag:
			wrapped = append(wrapped, altsrc.NewDurationFlag(f))
		default:
			panic(fmt.Sprintf("cannot convert type %T", f))
		}
	}
	return wrapped
}
