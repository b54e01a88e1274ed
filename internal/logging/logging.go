// Package logging configures the global zerolog logger for the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the log level and sinks
type Options struct {
	// Verbose raises the level to debug
	Verbose bool

	// Quiet discards everything below error
	Quiet bool

	// File, when set, duplicates log output to a rotating file
	File string
}

// Setup initializes the global logger. Console output goes to stderr so it
// never mixes with report output on stdout.
func Setup(opts Options) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case opts.Quiet:
		level = zerolog.ErrorLevel
	case opts.Verbose:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	var out io.Writer
	if len(writers) == 1 {
		out = writers[0]
	} else {
		out = io.MultiWriter(writers...)
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
