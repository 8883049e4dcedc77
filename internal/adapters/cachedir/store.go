// Package cachedir implements the cross-session cache: JSON values stored as
// files under <cacheDir>/v/<key>.
package cachedir

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/zerr"
)

// readmeContent is written to new cache directories.
const readmeContent = `# blackcheck cache directory

This directory contains data from blackcheck's recheck cache.
Do not commit it to version control.
`

// Store implements ports.CacheStore using one JSON file per key.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get decodes the value stored under key into dst.
// A value that cannot be decoded yields an error matching domain.ErrCacheUnmarshalFailed.
func (s *Store) Get(cacheDir, key string, dst any) (bool, error) {
	path := domain.CacheValuePath(cacheDir, key)
	//nolint:gosec // Path is built from the configured cache directory and a fixed key
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "key", key)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// The sentinel stays in the chain so callers can tell a corrupt value from an unreadable one.
		return false, zerr.With(zerr.Wrap(domain.ErrCacheUnmarshalFailed, err.Error()), "key", key)
	}

	return true, nil
}

// Set stores value under key, replacing the previous value.
// The write goes through a temporary file so readers never observe a partial value.
func (s *Store) Set(cacheDir, key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error()), "key", key)
	}

	if err := ensureCacheDir(cacheDir); err != nil {
		return err
	}

	path := domain.CacheValuePath(cacheDir, key)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	return nil
}

// ensureCacheDir creates cacheDir with a README the first time it is used.
func ensureCacheDir(cacheDir string) error {
	if _, err := os.Stat(cacheDir); err == nil {
		return nil
	}
	if err := os.MkdirAll(cacheDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", cacheDir)
	}
	readme := filepath.Join(cacheDir, "README.md")
	//nolint:gosec // README is not sensitive
	if err := os.WriteFile(readme, []byte(readmeContent), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", readme)
	}
	return nil
}

// Clear removes the cache directory and everything in it.
func Clear(cacheDir string) error {
	if err := os.RemoveAll(cacheDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove cache directory"), "path", cacheDir)
	}
	return nil
}
