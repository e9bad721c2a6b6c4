// The logging package builds the structured logger used by the programs.
// Records go to stderr, or to a log file that's rotated when it gets too
// big.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the logger.  If Directory is empty the log goes to
// stderr.
type Config struct {
	Directory  string `yaml:"directory"`
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

// ParseLevel converts a level name to a slog.Level.  An empty name means
// info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger.  stderr is used when no directory is configured.
// The returned closer closes the log file, if there is one.
func New(config Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	if config.Directory == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), nopCloser{}, nil
	}

	if err := os.MkdirAll(config.Directory, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	filename := config.Filename
	if filename == "" {
		filename = "ssr.log"
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(config.Directory, filename),
		MaxSize:    config.MaxSizeMB,
		MaxAge:     config.MaxAgeDays,
		MaxBackups: config.MaxBackups,
		Compress:   config.Compress,
	}
	return slog.New(slog.NewTextHandler(rotator, opts)), rotator, nil
}
