// Package fs provides filesystem access for rrun behind a small interface.
package fs

import (
	"io/fs"
	"os"
)

// FS is the subset of filesystem operations rrun needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
	MkdirAll(path string, perm os.FileMode) error
	TempDir() string
}

// RealFS implements FS against the host filesystem.
type RealFS struct{}

// NewRealFS returns an FS backed by package os.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (RealFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (RealFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (RealFS) Remove(name string) error { return os.Remove(name) }

func (RealFS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) }

func (RealFS) TempDir() string { return os.TempDir() }

// IsRegularFile reports whether path exists and is a regular file (symlinks followed).
func IsRegularFile(fsys FS, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
