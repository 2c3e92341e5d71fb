// Package logger builds the application's structured logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing JSON lines to stdout. Unknown
// level names fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
