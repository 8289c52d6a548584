package xlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"golang.org/x/term"
)

type Logger = zerolog.Logger
type Level = zerolog.Level
type Event = zerolog.Event

const (
	LevelDebug    = zerolog.DebugLevel
	LevelInfo     = zerolog.InfoLevel
	LevelWarn     = zerolog.WarnLevel
	LevelError    = zerolog.ErrorLevel
	LevelFatal    = zerolog.FatalLevel
	LevelNone     = zerolog.NoLevel
	LevelSuppress = zerolog.Disabled
)

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
}

func Default() *Logger { return &log.Logger }

var nop = zerolog.Nop()

// Nop returns a disabled logger.
func Nop() *Logger { return &nop }

func NewConsoleWriter(f io.Writer) io.Writer {
	if file, ok := f.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	return f
}

func StderrWriter() io.Writer { return NewConsoleWriter(os.Stderr) }
