package xlog

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LogRetentionDays = 28
	LogMaxSizeMB     = 16
	LogCompress      = false
)

// FileWriter returns an append-only sink for a debug log path.
func FileWriter(name string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename: name,
		MaxSize:  LogMaxSizeMB,
		MaxAge:   LogRetentionDays,
		Compress: LogCompress,
	}
}

type noCloser struct {
	io.Writer
}

func (noCloser) Close() error { return nil }

// plainLines renders events as timestamped plain-text lines, for
// append-only debug logs read by humans.
func plainLines(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05.000",
	}
}

// NewRunLogger builds the debug logger for one run: timestamped lines
// appended to path, mirrored to stderr when verbose. An empty path
// with verbose off disables logging entirely.
func NewRunLogger(path string, verbose bool) (*Logger, io.Closer) {
	var writers []io.Writer
	closer := io.Closer(noCloser{})
	if path != "" {
		f := FileWriter(path)
		writers = append(writers, plainLines(f))
		closer = f
	}
	if verbose {
		writers = append(writers, StderrWriter())
	}
	if len(writers) == 0 {
		return Nop(), closer
	}
	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(LevelDebug).
		With().Timestamp().Logger()
	return &l, closer
}
