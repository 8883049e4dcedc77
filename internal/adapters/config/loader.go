// Package config loads blackcheck settings and the [tool.black] filter configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// rootMarkers are the files whose presence marks a root directory, in priority order.
var rootMarkers = []string{domain.SettingsFileName, domain.PyprojectFileName}

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// DiscoverRoot walks up from cwd to the first directory containing a settings
// file or pyproject.toml. It returns the absolute cwd if none is found.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	start, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "cwd", cwd)
	}

	current := start
	for {
		for _, marker := range rootMarkers {
			if _, err := l.FS.Stat(filepath.Join(current, marker)); err == nil {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return start, nil
		}
		current = parent
	}
}

// LoadSettings reads blackcheck.yaml from root. A missing file yields defaults.
func (l *Loader) LoadSettings(root string) (*domain.Settings, error) {
	settings := domain.DefaultSettings(root)
	path := filepath.Join(root, domain.SettingsFileName)

	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", path)
	}

	var file Settingsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", path)
	}

	if len(file.Formatter) > 0 {
		settings.Formatter = file.Formatter
	}
	if len(file.Extensions) > 0 {
		settings.Extensions = normalizeExtensions(file.Extensions)
	}
	if file.NoRecurseDirs != nil {
		settings.NoRecurseDirs = file.NoRecurseDirs
	}
	if file.CacheDir != "" {
		settings.CacheDir = file.CacheDir
	}

	return settings, nil
}

// LoadFilter reads include/exclude from the [tool.black] table of the file at
// pyprojectPath. Any problem yields the empty configuration: a missing file or
// table silently, an unreadable or malformed file with a warning.
func (l *Loader) LoadFilter(pyprojectPath string) domain.FilterConfig {
	data, err := l.FS.ReadFile(pyprojectPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.warn(fmt.Sprintf("ignoring %s: %v", pyprojectPath, err))
		}
		return domain.FilterConfig{}
	}

	var project Pyproject
	if err := toml.Unmarshal(data, &project); err != nil {
		l.warn(fmt.Sprintf("ignoring %s: %v", pyprojectPath, zerr.Wrap(err, domain.ErrPyprojectParseFailed.Error())))
		return domain.FilterConfig{}
	}

	if project.Tool.Black == nil {
		return domain.FilterConfig{}
	}

	return domain.FilterConfig{
		Include: project.Tool.Black.Include,
		Exclude: project.Tool.Black.Exclude,
	}
}

func (l *Loader) warn(msg string) {
	if l.Logger != nil {
		l.Logger.Warn(msg)
	}
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
