// Package config resolves guestmail settings from flags, environment,
// an optional config file and built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "guestmail"

// Dir returns the guestmail configuration directory.
//
// Resolution:
//   - $GUESTMAIL_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/guestmail if set (respects XDG on any platform)
//   - %AppData%/guestmail on Windows
//   - ~/.config/guestmail on macOS and Linux
func Dir() string {
	if dir := os.Getenv("GUESTMAIL_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// DefaultTemplatesDir is where templates live when nothing overrides it.
// Falls back to ./templates when no config directory can be resolved.
func DefaultTemplatesDir() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "templates")
	}
	return "templates"
}
