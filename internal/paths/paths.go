// Package paths resolves rrun's per-user directories.
package paths

import (
	"os"
	"path/filepath"
)

// Env reads environment variables. It exists so tests can supply a fixed environment.
type Env interface {
	Get(key string) string
}

// OSEnv reads from the process environment.
type OSEnv struct{}

// Get implements Env.
func (OSEnv) Get(key string) string { return os.Getenv(key) }

// MapEnv is an Env backed by a map.
type MapEnv map[string]string

// Get implements Env.
func (m MapEnv) Get(key string) string { return m[key] }

// ConfigDir returns the rrun config directory.
// Precedence: $RRUN_CONFIG_DIR, $XDG_CONFIG_HOME/rrun, <home>/.config/rrun.
func ConfigDir(env Env, homeDir string) string {
	if dir := env.Get("RRUN_CONFIG_DIR"); dir != "" {
		return filepath.Clean(dir)
	}
	if xdg := env.Get("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, "rrun")
	}
	return filepath.Join(homeDir, ".config", "rrun")
}
