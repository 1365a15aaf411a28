package config

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/NielsdaWheelz/rrun/internal/errors"
)

// Validate checks a decoded config and returns E_INVALID_CONFIG on the first problem.
func Validate(cfg Config) (Config, error) {
	if cfg.Version != 1 {
		return cfg, errors.New(errors.EInvalidConfig, "version must be 1")
	}

	tools := []struct{ field, val string }{
		{"vcs", cfg.VCS},
		{"compiler", cfg.Compiler},
		{"build_tool", cfg.BuildTool},
	}
	for _, tool := range tools {
		if containsWhitespace(tool.val) {
			return cfg, errors.New(errors.EInvalidConfig, tool.field+" must be a single executable (no args); use "+argsFieldFor(tool.field))
		}
	}

	for _, ext := range []struct{ field, val string }{
		{"source_ext", cfg.SourceExt},
		{"binary_ext", cfg.BinaryExt},
	} {
		if ext.val == "" {
			continue
		}
		if !strings.HasPrefix(ext.val, ".") || len(ext.val) < 2 {
			return cfg, errors.New(errors.EInvalidConfig, ext.field+" must start with '.' followed by at least one character")
		}
		if strings.ContainsAny(ext.val, `/\`) || containsWhitespace(ext.val) {
			return cfg, errors.New(errors.EInvalidConfig, ext.field+" must not contain path separators or whitespace")
		}
	}

	if cfg.TempDir != "" && !filepath.IsAbs(cfg.TempDir) {
		return cfg, errors.New(errors.EInvalidConfig, "temp_dir must be an absolute path")
	}

	for i, a := range cfg.CompilerArgs {
		if a == "" {
			return cfg, errors.New(errors.EInvalidConfig, "compiler_args["+strconv.Itoa(i)+"] must be non-empty")
		}
	}
	for i, a := range cfg.BuildToolArgs {
		if a == "" {
			return cfg, errors.New(errors.EInvalidConfig, "build_tool_args["+strconv.Itoa(i)+"] must be non-empty")
		}
	}
	return cfg, nil
}

func argsFieldFor(field string) string {
	switch field {
	case "compiler":
		return "compiler_args"
	case "build_tool":
		return "build_tool_args"
	default:
		return "a wrapper script"
	}
}

// containsWhitespace returns true if s contains any whitespace character.
func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
