// Package paths resolves the configuration and journal directory
// locations for the patternbook CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDir is the directory name used under platform config/data roots.
const appDir = "patternbook"

// Environment variable overrides.
const (
	EnvConfigDir  = "PATTERNBOOK_CONFIG_DIR"
	EnvJournalDir = "PATTERNBOOK_JOURNAL_DIR"
)

// platformDir holds platform-detection functions that can be
// overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/patternbook (fallback ~/.config/patternbook)
// macOS:   ~/Library/Application Support/patternbook
// Windows: %APPDATA%/patternbook
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDir), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDir), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

// DefaultJournalDir returns the platform-specific default journal
// directory.
//
// Linux:   $XDG_DATA_HOME/patternbook (fallback ~/.local/share/patternbook)
// macOS:   ~/Library/Application Support/patternbook
// Windows: %APPDATA%/patternbook
func DefaultJournalDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDir), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appDir), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > PATTERNBOOK_CONFIG_DIR env > platform
// default.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveJournalDir returns the journal directory following the
// precedence chain: flag > config.yaml value > PATTERNBOOK_JOURNAL_DIR
// env > platform default.
func ResolveJournalDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvJournalDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultJournalDir()
}
