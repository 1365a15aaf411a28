package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotUnderPrefix is returned when a target path is not under the allowed prefix.
type ErrNotUnderPrefix struct {
	Target string
	Prefix string
}

func (e *ErrNotUnderPrefix) Error() string {
	return fmt.Sprintf("target %q is not under allowed prefix %q", e.Target, e.Prefix)
}

// RemoveUnder removes a single file only if it lives strictly below allowedPrefix.
// It guards deletion of the staged binary so a bad temp-dir setting can never
// remove anything outside it.
//
// Both paths are cleaned and the prefix is resolved through symlinks
// (the target's directory is resolved the same way, so /tmp -> /private/tmp works).
// A missing target is not an error.
func RemoveUnder(fsys FS, target, allowedPrefix string) error {
	cleanTarget := filepath.Clean(target)
	cleanPrefix := filepath.Clean(allowedPrefix)

	resolvedPrefix, err := filepath.EvalSymlinks(cleanPrefix)
	if err != nil {
		return &ErrNotUnderPrefix{Target: target, Prefix: allowedPrefix}
	}
	resolvedDir, err := filepath.EvalSymlinks(filepath.Dir(cleanTarget))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ErrNotUnderPrefix{Target: target, Prefix: allowedPrefix}
	}
	resolvedTarget := filepath.Join(resolvedDir, filepath.Base(cleanTarget))

	if !IsSubpath(resolvedTarget, resolvedPrefix) {
		return &ErrNotUnderPrefix{Target: target, Prefix: allowedPrefix}
	}

	if err := fsys.Remove(cleanTarget); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// IsSubpath returns true if target is a proper subpath of prefix.
// Both paths should already be cleaned and resolved.
func IsSubpath(target, prefix string) bool {
	prefixWithSep := prefix
	if !strings.HasSuffix(prefixWithSep, string(filepath.Separator)) {
		prefixWithSep = prefix + string(filepath.Separator)
	}
	return strings.HasPrefix(target, prefixWithSep) && len(target) > len(prefix)
}
