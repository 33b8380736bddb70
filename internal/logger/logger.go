package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a zerolog.Logger for the given environment. Development
// gets debug level and human-readable console output; anything else logs
// JSON at info level.
func New(appEnv string) zerolog.Logger {
	return NewWithWriter(appEnv, os.Stdout)
}

// NewWithWriter is New with an explicit output
func NewWithWriter(appEnv string, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}

	if appEnv == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "bike-dashboard").
		Logger()
}
