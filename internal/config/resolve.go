package config

import (
	"path/filepath"

	"github.com/NielsdaWheelz/rrun/internal/fs"
	"github.com/NielsdaWheelz/rrun/internal/paths"
)

// Resolve loads the config for an invocation.
// An explicit path must exist; otherwise the file in the user config dir is optional.
// With no usable home directory and no directory override, defaults are returned.
func Resolve(fsys fs.FS, explicit string, env paths.Env, homeDir string) (Config, error) {
	if explicit != "" {
		cfg, _, err := Load(fsys, explicit, true)
		return cfg, err
	}

	dir := paths.ConfigDir(env, homeDir)
	if !filepath.IsAbs(dir) && homeDir == "" {
		return Default(), nil
	}
	cfg, _, err := Load(fsys, Path(dir), false)
	return cfg, err
}
