// Package logx builds the application logger. Services log store failures
// with operation and owner context; the fiber logger middleware covers
// request lines.
package logx

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger configured from LOG_LEVEL and APP_ENV.
// Production emits JSON to stdout; anything else gets the console writer.
func New() zerolog.Logger {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	if strings.ToLower(os.Getenv("APP_ENV")) != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02T15:04:05Z07:00"}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
