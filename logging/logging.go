package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	logFileName = "vi-golf.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup returns the session logger
// The terminal owns stdout/stderr, so output only ever goes to a file under dir
// Disabled logging returns a no-op logger and a nil file
func Setup(enabled bool, dir, level string) (zerolog.Logger, *os.File, error) {
	if !enabled {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if err := rotate(path, time.Now()); err != nil {
		return zerolog.Nop(), nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := New(file, level)
	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")
	return logger, file, nil
}

// New builds a logger writing plain console-format lines to w
// Every record carries the run's session id
func New(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
}

// rotate moves an oversized log aside under a timestamped name
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking log file: %w", err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotating log file: %w", err)
	}
	return nil
}
