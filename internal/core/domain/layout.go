package domain

import "path/filepath"

const (
	// CacheDirName is the name of the cross-session cache directory.
	CacheDirName = ".blackcheck_cache"

	// CacheValuesDirName is the directory inside the cache holding keyed values.
	CacheValuesDirName = "v"

	// MtimesCacheKey is the cache key under which the recheck cache is stored.
	MtimesCacheKey = "black/mtimes"

	// SettingsFileName is the name of the blackcheck settings file.
	SettingsFileName = "blackcheck.yaml"

	// PyprojectFileName is the name of the project configuration file holding [tool.black].
	PyprojectFileName = "pyproject.toml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache directory relative to the root directory.
func DefaultCachePath() string {
	return CacheDirName
}

// CacheValuePath returns the file path holding the value for key inside cacheDir.
// Keys use "/" as separator regardless of platform.
func CacheValuePath(cacheDir, key string) string {
	return filepath.Join(cacheDir, CacheValuesDirName, filepath.FromSlash(key))
}
