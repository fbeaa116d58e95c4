package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger. Output is JSON on stdout; an invalid
// level falls back to info rather than failing startup.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "app-sso").
		Logger()
}
