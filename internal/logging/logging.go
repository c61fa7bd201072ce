// Package logging builds the diagnostic logger used under --verbose.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Verbosity 0 yields a disabled
// logger; 1 logs at debug level and 2 or more at trace level.
func New(w io.Writer, verbosity int, noColor bool) zerolog.Logger {
	if verbosity <= 0 {
		return zerolog.Nop()
	}

	level := zerolog.DebugLevel
	if verbosity >= 2 {
		level = zerolog.TraceLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Component returns a child logger tagged with a component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
