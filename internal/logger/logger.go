package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct{ zerolog.Logger }

// New builds the diagnostic logger. It writes human-readable lines to w
// (stderr in practice, so report output on stdout stays clean); verbose
// lowers the level to debug.
func New(w io.Writer, verbose bool) *Logger {
	lvl := zerolog.WarnLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	z := zerolog.New(cw).With().Timestamp().Logger().Level(lvl)
	return &Logger{z}
}
