// Package paths resolves the configuration and output directory locations
// for the stencil CLI. Precedence is always flag > config.yaml > environment
// > platform or CWD default.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "STENCIL_CONFIG_DIR"
	EnvOutDir    = "STENCIL_OUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/stencil (fallback ~/.config/stencil)
// macOS:   ~/Library/Application Support/stencil
// Windows: %APPDATA%/stencil
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "stencil"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "stencil"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "stencil"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > STENCIL_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveOutDir returns the artifact output directory following the
// precedence chain: flag > config.yaml out_dir > STENCIL_OUT_DIR env > CWD.
//
// The CWD default is deliberate: generation targets the project tree the
// tool is invoked from, the same place the generated files are committed.
func ResolveOutDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvOutDir); env != "" {
		return filepath.Abs(env)
	}
	return os.Getwd()
}
