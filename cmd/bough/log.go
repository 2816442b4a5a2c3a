package main

import (
	"io"

	"github.com/rs/zerolog"
)

type logger struct {
	zerolog.Logger
}

/*
newLogger returns a logger writing human-readable lines on w. Progress
messages and the debug events of tree growth are only written when verbose
is true.
*/
func newLogger(w io.Writer, verbose bool) logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger{l}
}

func (l logger) Logf(format string, a ...interface{}) {
	l.Info().Msgf(format, a...)
}
