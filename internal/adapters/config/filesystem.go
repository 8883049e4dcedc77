package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the read-only view of the disk the loader needs.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS instance.
func NewOSFS() OSFS {
	return OSFS{}
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is built from the discovered root directory
	return os.ReadFile(path)
}

// MountedFS serves an fs.FS, typically an fstest.MapFS, as if it were mounted
// at the absolute directory Root.
type MountedFS struct {
	FS   fs.FS
	Root string
}

// Mount returns fsys mounted at root.
func Mount(root string, fsys fs.FS) *MountedFS {
	return &MountedFS{FS: fsys, Root: filepath.Clean(root)}
}

// Stat returns file info for path.
func (m *MountedFS) Stat(path string) (fs.FileInfo, error) {
	name, err := m.name(path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(m.FS, name)
}

// ReadFile reads the file at path.
func (m *MountedFS) ReadFile(path string) ([]byte, error) {
	name, err := m.name(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(m.FS, name)
}

// name maps an absolute path below Root to an fs.FS name.
// Paths outside Root do not exist.
func (m *MountedFS) name(path string) (string, error) {
	rel, err := filepath.Rel(m.Root, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return filepath.ToSlash(rel), nil
}
