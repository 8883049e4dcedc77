package domain

import "go.trai.ch/zerr"

var (
	// ErrCheckFailed is returned when at least one unit failed its format check.
	ErrCheckFailed = zerr.New("format check failed")
	// ErrFormatterStartFailed is returned when the formatter process cannot be started.
	ErrFormatterStartFailed = zerr.New("failed to start formatter")
	// ErrFormatterNotFound is returned when the formatter executable cannot be located.
	ErrFormatterNotFound = zerr.New("formatter executable not found")
	// ErrEmptyFormatterCommand is returned when the configured formatter command is empty.
	ErrEmptyFormatterCommand = zerr.New("formatter command is empty")
	// ErrStatFailed is returned when a unit's modification time cannot be read.
	ErrStatFailed = zerr.New("failed to stat file")
	// ErrPathNotFound is returned when a path given on the command line does not exist.
	ErrPathNotFound = zerr.New("file or directory not found")
	// ErrCacheReadFailed is returned when a cache value cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache value")
	// ErrCacheUnmarshalFailed is returned when a cache value cannot be decoded.
	ErrCacheUnmarshalFailed = zerr.New("failed to unmarshal cache value")
	// ErrCacheMarshalFailed is returned when a cache value cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache value")
	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")
	// ErrCacheWriteFailed is returned when a cache value cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache value")
	// ErrCacheUnavailable is returned when no cache store is configured.
	ErrCacheUnavailable = zerr.New("cache store unavailable")
	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")
	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")
	// ErrPyprojectParseFailed is returned when pyproject.toml cannot be parsed.
	ErrPyprojectParseFailed = zerr.New("failed to parse pyproject.toml")
	// ErrInvalidPattern is returned when an include or exclude pattern does not compile.
	ErrInvalidPattern = zerr.New("invalid include/exclude pattern")
	// ErrFailedToGetRoot is returned when the root directory cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to determine root directory")
	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
