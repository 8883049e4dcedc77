package domain

import "path/filepath"

// DefaultFormatterCommand is the command prefix used to invoke the formatter.
var DefaultFormatterCommand = []string{"black"}

// DefaultExtensions are the file extensions collected as units.
var DefaultExtensions = []string{".py"}

// DefaultNoRecurseDirs are directory name globs that are never descended into.
var DefaultNoRecurseDirs = []string{
	"*.egg", ".*", "_darcs", "build", "CVS", "dist", "node_modules", "venv", "{arch}",
}

// CheckArgs are the arguments appended to the formatter command before the file path.
var CheckArgs = []string{"--check", "--diff", "--quiet"}

// Settings is the resolved blackcheck configuration for one root directory.
type Settings struct {
	// RootDir is the absolute directory that anchors the cache and pyproject.toml.
	RootDir string
	// Formatter is the command prefix used to run the formatter.
	Formatter []string
	// Extensions are the recognised source file extensions.
	Extensions []string
	// NoRecurseDirs are directory name globs skipped during collection.
	NoRecurseDirs []string
	// CacheDir is the cache directory, relative to RootDir unless absolute.
	CacheDir string
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings(root string) *Settings {
	return &Settings{
		RootDir:       root,
		Formatter:     append([]string(nil), DefaultFormatterCommand...),
		Extensions:    append([]string(nil), DefaultExtensions...),
		NoRecurseDirs: append([]string(nil), DefaultNoRecurseDirs...),
		CacheDir:      DefaultCachePath(),
	}
}

// CachePath returns the absolute cache directory.
func (s *Settings) CachePath() string {
	if filepath.IsAbs(s.CacheDir) {
		return s.CacheDir
	}
	return filepath.Join(s.RootDir, s.CacheDir)
}

// PyprojectPath returns the path of pyproject.toml in the root directory.
func (s *Settings) PyprojectPath() string {
	return filepath.Join(s.RootDir, PyprojectFileName)
}

// IsSourceFile reports whether path has one of the recognised extensions.
func (s *Settings) IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range s.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}
