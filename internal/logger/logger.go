// Package logger configures the global zerolog logger from CLI options.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a go-flags option group.
type Logger struct {
	Level  string `long:"log-level"  env:"LOG_LEVEL"  description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Format string `long:"log-format" env:"LOG_FORMAT" description:"Log format" choice:"text" choice:"json" default:"text"`
	File   string `long:"log-file"   env:"LOG_FILE"   description:"Write logs to file"`
}

// Setup points the global logger at the log file, or stderr when none is
// set. The returned closer releases the log file, if any.
func (l Logger) Setup() io.Closer {
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var (
		out     io.Writer = os.Stderr
		closer  io.Closer = nopCloser{}
		fileErr error
	)
	if l.File != "" {
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fileErr = err
		} else {
			out, closer = f, f
		}
	}

	log.Logger = zerolog.New(l.writer(out)).With().Timestamp().Logger()
	if fileErr != nil {
		log.Error().Err(fileErr).Str("file", l.File).Msg("Failed to open log file, logging to stderr")
	}
	return closer
}

// Mute discards log output unless a log file is set. The TUI owns the
// terminal while it runs.
func (l Logger) Mute() {
	if l.File == "" {
		log.Logger = log.Output(io.Discard)
	}
}

func (l Logger) writer(out io.Writer) io.Writer {
	if l.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
		NoColor:    out != io.Writer(os.Stderr),
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
