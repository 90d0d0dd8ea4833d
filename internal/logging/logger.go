// Package logging sets up the application's structured logger: JSON records
// to a platform log file, with simple size-based rotation.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// rotateAt is the file size that triggers rotation (2 MB).
	rotateAt = 2 * 1024 * 1024
	// backups is how many rotated files are kept.
	backups = 2
)

// New returns a logger writing JSON records to the platform log file for
// appName. Debug mode lowers the level and records source locations.
func New(appName string, debug bool) (*slog.Logger, error) {
	path, err := filePath(appName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if err := rotate(path); err != nil {
		return nil, fmt.Errorf("rotate log file: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})), nil
}

// NewNop returns a logger that discards everything. For tests.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// filePath returns the platform-conventional log file location.
func filePath(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", appName, appName+".log"), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, appName, "Logs", appName+".log"), nil
	default:
		// Linux and the rest of the unix family.
		base := os.Getenv("XDG_STATE_HOME")
		if base == "" {
			base = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(base, appName, appName+".log"), nil
	}
}

// rotate shifts path to path.1 (and .1 to .2, dropping the oldest) once the
// current file exceeds rotateAt.
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < rotateAt {
		return nil
	}

	for i := backups; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", path, i)
		if i == backups {
			os.Remove(src)
			continue
		}
		os.Rename(src, fmt.Sprintf("%s.%d", path, i+1))
	}
	return os.Rename(path, path+".1")
}
