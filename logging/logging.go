package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level, destination and format of the game log
type Config struct {
	Level  string // trace|debug|info|warn|error
	Dir    string // log directory, empty disables file logging
	Pretty bool   // human-readable console format instead of JSON
}

// ParseLevel maps a config string onto a zerolog level, defaulting to info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// FilePath builds a per-session log file path
func FilePath(dir, name string, sessionStart time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s.log", name, sessionStart.Format("20060102_150405")))
}

// New builds a timestamped logger writing to w
func New(cfg Config, w io.Writer) zerolog.Logger {
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Open creates the session log file under cfg.Dir
// The terminal belongs to the screen, so with no Dir the logger discards everything
func Open(cfg Config, name string, sessionStart time.Time) (zerolog.Logger, io.Closer, error) {
	if cfg.Dir == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log dir: %w", err)
	}

	path := FilePath(cfg.Dir, name, sessionStart)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := New(cfg, f)
	logger.Info().Str("path", path).Str("level", logger.GetLevel().String()).Msg("Logging set up")
	return logger, f, nil
}

// Component derives a logger tagged with a component name
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
