// Package paths resolves where emptrack keeps its config.yaml and its
// SQLite database file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName is the directory created under the platform config and data roots.
const appName = "emptrack"

// DefaultDataDirName is the CWD-relative data directory used when nothing
// else is configured.
const DefaultDataDirName = ".emptrack-db"

// DatabaseFile is the SQLite file name inside the data directory.
const DatabaseFile = "employees.db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "EMPTRACK_CONFIG_DIR"
	EnvDataDir   = "EMPTRACK_DATA_DIR"
)

// platform holds lookups that tests can replace.
var platform = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $xdgVar/emptrack on Linux, falling back to
// ~/<fallback>/emptrack. Other platforms use os.UserConfigDir.
func xdgDir(xdgVar string, fallback ...string) (string, error) {
	if platform.goos != "linux" {
		dir, err := platform.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
	if v := os.Getenv(xdgVar); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := platform.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, appName)...), nil
}

// DefaultConfigDir returns the platform configuration directory:
// $XDG_CONFIG_HOME/emptrack (or ~/.config/emptrack) on Linux, and the
// os.UserConfigDir equivalent elsewhere.
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// ResolveConfigDir applies flag > EMPTRACK_CONFIG_DIR > DefaultConfigDir.
// Explicit values are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies flag > config.yaml data_dir > EMPTRACK_DATA_DIR >
// $(CWD)/.emptrack-db. The result is absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// DatabasePath returns the SQLite file inside dataDir.
func DatabasePath(dataDir string) string {
	return filepath.Join(dataDir, DatabaseFile)
}
