// Package config loads and validates the optional rrun YAML config file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	rrerrors "github.com/NielsdaWheelz/rrun/internal/errors"
	"github.com/NielsdaWheelz/rrun/internal/fs"
)

// Built-in tool names and extensions.
const (
	DefaultVCS       = "git"
	DefaultCompiler  = "rustc"
	DefaultBuildTool = "cargo"
	DefaultSourceExt = ".rs"
	DefaultBinaryExt = ".rrun"
)

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// Config holds the parsed rrun configuration.
// All fields are optional; zero values mean the built-in default.
type Config struct {
	Version       int      `yaml:"version"`
	VCS           string   `yaml:"vcs"`
	Compiler      string   `yaml:"compiler"`
	CompilerArgs  []string `yaml:"compiler_args"`   // inserted before "-o <out> <src>"
	BuildTool     string   `yaml:"build_tool"`
	BuildToolArgs []string `yaml:"build_tool_args"` // inserted after "run"
	SourceExt     string   `yaml:"source_ext"`
	BinaryExt     string   `yaml:"binary_ext"`
	TempDir       string   `yaml:"temp_dir"` // absolute; empty means the OS temp dir
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Version: 1}
}

// VCSTool returns the version-control executable used for root discovery.
func (c Config) VCSTool() string { return orDefault(c.VCS, DefaultVCS) }

// CompilerTool returns the compiler executable for single-file mode.
func (c Config) CompilerTool() string { return orDefault(c.Compiler, DefaultCompiler) }

// BuildToolName returns the build tool executable for project mode.
func (c Config) BuildToolName() string { return orDefault(c.BuildTool, DefaultBuildTool) }

// SourceExtension returns the source-file extension, including the dot.
func (c Config) SourceExtension() string { return orDefault(c.SourceExt, DefaultSourceExt) }

// BinaryExtension returns the marker extension of staged binaries.
func (c Config) BinaryExtension() string { return orDefault(c.BinaryExt, DefaultBinaryExt) }

// StagingDir returns the directory for staged binaries, falling back to osTemp.
func (c Config) StagingDir(osTemp string) string { return orDefault(c.TempDir, osTemp) }

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// Path returns the default config file path inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, FileName)
}

// Load reads and validates the config file at path.
// A missing file yields Default() with found=false unless required is set,
// in which case it is E_INVALID_CONFIG (an explicitly named file must exist).
func Load(fsys fs.FS, path string, required bool) (Config, bool, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return Default(), false, nil
		}
		return Config{}, false, rrerrors.WrapWithDetails(rrerrors.EInvalidConfig,
			"failed to read config file", err, map[string]string{"config": path})
	}

	cfg, err := Parse(data)
	if err != nil {
		if ce, ok := rrerrors.AsCodedError(err); ok {
			return Config{}, false, rrerrors.WrapWithDetails(ce.Code, ce.Msg, ce.Cause, map[string]string{"config": path})
		}
		return Config{}, false, err
	}
	return cfg, true, nil
}

// Parse decodes YAML config data, rejecting unknown keys, and validates it.
// Empty input is the default config.
func Parse(data []byte) (Config, error) {
	cfg := Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, rrerrors.Wrap(rrerrors.EInvalidConfig, "invalid config: "+firstLine(err.Error()), err)
	}
	return Validate(cfg)
}
