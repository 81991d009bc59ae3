// Package config resolves simplegit settings from defaults, YAML files,
// .env files and the environment.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the simplegit configuration directory.
//
// Resolution:
//   - $SIMPLEGIT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/simplegit if set (respects XDG on any platform)
//   - %AppData%/simplegit on Windows
//   - ~/.config/simplegit on macOS and Linux
func Dir() string {
	if dir := os.Getenv("SIMPLEGIT_CONFIG_HOME"); dir != "" {
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

// GlobalFile returns the path of the user-wide config file, or "" when no
// config directory can be determined.
func GlobalFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
