// Package logging builds the zerolog loggers used by the binafft command.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Level names accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// NewLogger returns a human-readable logger writing to w, tagged with
// component and filtered at level.
func NewLogger(w io.Writer, component string, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}

	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// NewJSONLogger returns a structured logger writing one JSON object per
// event to w.
func NewJSONLogger(w io.Writer, component string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}

	return level
}
