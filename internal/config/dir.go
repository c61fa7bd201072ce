// Package config loads gig's user configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the gig configuration directory.
//
// Resolution:
//   - $GIG_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/gig if set (respects XDG on any platform)
//   - %AppData%/gig on Windows
//   - ~/.config/gig on macOS and Linux
func Dir() string {
	if dir := os.Getenv("GIG_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gig")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gig")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gig")
}

// DefaultPath returns the config file location, or "" if no directory
// can be determined.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
