package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Setup opens the log file and builds the logger the binaries share. The
// terminal itself belongs to the playfield, so console-formatted output
// goes to a file; an empty path disables logging entirely. The returned
// closer is a no-op when disabled.
func Setup(level, path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("error opening log file: %w", err)
	}

	zerolog.SetGlobalLevel(ParseLevel(level))

	w := zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	logger := zerolog.New(w).With().Timestamp().Logger()

	return logger, func() { file.Close() }, nil
}

// ParseLevel maps a config string to a zerolog level
// Unknown values land on info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "TRACE":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}
