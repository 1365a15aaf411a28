package commands

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StagedBinaryPath returns where a compiled single-file program is written:
// <dir>/<stem>-<id><ext>, where stem is the source base name without its extension
// and id is derived from the absolute source path, so same-named files in
// different directories never share a staged binary.
func StagedBinaryPath(dir, absSource, ext string) string {
	base := filepath.Base(absSource)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(dir, stem+"-"+sourceID(absSource)+ext)
}

// sourceID is the first 8 hex digits of a name-based (SHA-1) UUID of the path.
func sourceID(absSource string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(absSource)))
	return id.String()[:8]
}
