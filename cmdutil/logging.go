// SPDX-License-Identifier: MIT

package cmdutil

import (
	"os"
	"strings"

	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "cmdutil")

// Before returns the cli.BeforeFunc every command installs: it loads flag
// values from --config-file, if set, and then configures logging.
// flags must be the wrapped flags the app was built with.
func Before(flags []cli.Flag) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		if ctx.IsSet(ConfigFileFlag.Name) {
			if err := altsrc.InitInputSourceWithContext(
				flags,
				altsrc.NewYamlSourceFromFlagFunc(ConfigFileFlag.Name))(ctx); err != nil {
				return errors.Wrap(err, "could not load config file")
			}
		}
		return ConfigureLogging(ctx)
	}
}

// NewFormatter returns the logrus formatter for a --log-format value.
func NewFormatter(format string, colors bool) (logrus.Formatter, error) {
	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = !colors
		return formatter, nil
	case "fluentd":
		return joonix.NewFormatter(), nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, errors.Errorf("unknown log format %s", format)
	}
}

// ConfigureLogging applies --verbosity, --log-format and --log-file to the
// standard logrus logger. Logs go to the app's error writer so that standard
// output carries only image data.
func ConfigureLogging(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(VerbosityFlag.Name))
	if err != nil {
		return errors.Wrap(err, "could not parse verbosity")
	}
	logrus.SetLevel(level)

	logFile := ctx.String(LogFileFlag.Name)
	// ANSI colors are gibberish in persistent log files.
	formatter, err := NewFormatter(ctx.String(LogFormatFlag.Name), logFile == "")
	if err != nil {
		return err
	}
	logrus.SetFormatter(formatter)
	if ctx.App != nil && ctx.App.ErrWriter != nil {
		logrus.SetOutput(ctx.App.ErrWriter)
	} else {
		logrus.SetOutput(os.Stderr)
	}

	if logFile != "" {
		if err := ConfigurePersistentLogging(logFile, ctx.String(LogFormatFlag.Name)); err != nil {
			log.WithError(err).Error("Failed to configure logging to disk")
		}
	}
	return nil
}

var _ = logrus.Hook(&WriterHook{})

// WriterHook is a hook that writes logs of specified LogLevels to Logger.
type WriterHook struct {
	LogLevels []logrus.Level
	Logger    *logrus.Logger
}

// Fire formats the entry with the hook's logger and appends it.
func (hook *WriterHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	hook.Logger.Println(strings.TrimSuffix(line, "\n"))
	return nil
}

// Levels defines on which log levels this hook would trigger.
func (hook *WriterHook) Levels() []logrus.Level {
	return hook.LogLevels
}

// ConfigurePersistentLogging adds a hook to the standard logger that appends
// every entry to fileName, formatted as format.
func ConfigurePersistentLogging(fileName, format string) error {
	formatter, err := NewFormatter(format, false)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return errors.Wrap(err, "could not open log file")
	}
	fileLogger := &logrus.Logger{
		Out:       f,
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.TraceLevel,
	}
	logrus.AddHook(&WriterHook{LogLevels: logrus.AllLevels, Logger: fileLogger})
	logrus.WithField("logFileName", fileName).Debug("Logs will be made persistent")

	return nil
}
