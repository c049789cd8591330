package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init initializes the global logger with configuration from environment variables.
// GEMINI_LOG_LEVEL controls the log level: debug, info, warn, error (default: info)
// GEMINI_LOG_FORMAT=json switches from the console writer to plain JSON lines.
// Code logging through log.Ctx falls back to the global logger when the
// context carries none.
func Init() {
	zerolog.SetGlobalLevel(ParseLevel(os.Getenv("GEMINI_LOG_LEVEL")))
	log.Logger = zerolog.New(writer(os.Getenv("GEMINI_LOG_FORMAT"), os.Stderr)).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}

// ParseLevel maps a GEMINI_LOG_LEVEL value to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func writer(format string, out io.Writer) io.Writer {
	if format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{Out: out}
}
