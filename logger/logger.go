// Package logger owns the process-wide logrus logger. The terminal belongs
// to the game, so log output goes to a file or nowhere
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultDir  = "logs"
	FileName    = "tilechase.log"
	MaxLogSize  = 10 * 1024 * 1024
	rotatedTime = "20060102-150405"
)

// Log is the global logger. It discards everything until Init enables it
var Log = newDiscard()

// Options select where and how much to log
// Level and Format fall back to LOG_LEVEL and LOG_FORMAT, then to info and text
type Options struct {
	Enabled bool
	Level   string
	Dir     string
	Format  string
}

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures Log. When enabled it returns the open log file, which the
// caller closes on exit; disabled logging returns nil
func Init(opts Options) (*os.File, error) {
	Log = logrus.New()
	Log.SetLevel(parseLevel(opts.Level))
	Log.SetFormatter(formatter(opts.Format))

	if !opts.Enabled {
		Log.SetOutput(io.Discard)
		return nil, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		Log.SetOutput(io.Discard)
		return nil, fmt.Errorf("logger: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path, time.Now()); err != nil {
		Log.SetOutput(io.Discard)
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Log.SetOutput(io.Discard)
		return nil, fmt.Errorf("logger: open %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f, nil
}

// rotate moves an oversized log aside under a timestamped name
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxLogSize {
		return nil
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	rotated := fmt.Sprintf("%s-%s.log", base, now.Format(rotatedTime))
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("logger: rotate %s: %w", path, err)
	}
	return nil
}

func parseLevel(name string) logrus.Level {
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}
	if name == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func formatter(name string) logrus.Formatter {
	if name == "" {
		name = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(name) == "json" {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	}
}
