package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Collector = (*Collector)(nil)

// Collector turns command-line paths into units.
type Collector struct {
	walker *Walker
}

// NewCollector creates a new Collector.
func NewCollector(walker *Walker) *Collector {
	return &Collector{walker: walker}
}

// CollectFile returns a unit for path if enabled is set and path has a source extension.
func (c *Collector) CollectFile(settings *domain.Settings, path string, enabled bool) (domain.Unit, bool) {
	if !enabled || !settings.IsSourceFile(path) {
		return domain.Unit{}, false
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	return domain.NewUnit(abs, relativeTo(settings.RootDir, abs)), true
}

// Collect expands directories in paths and collects every eligible file once.
// Explicitly named files are collected even inside norecurse directories.
// Units are ordered by node id.
func (c *Collector) Collect(settings *domain.Settings, paths []string, enabled bool) ([]domain.Unit, error) {
	if len(paths) == 0 {
		paths = []string{settings.RootDir}
	}

	seen := make(map[string]struct{})
	var units []domain.Unit

	add := func(path string) {
		unit, ok := c.CollectFile(settings, path, enabled)
		if !ok {
			return
		}
		if _, dup := seen[unit.Path]; dup {
			return
		}
		seen[unit.Path] = struct{}{}
		units = append(units, unit)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, zerr.With(zerr.Wrap(domain.ErrPathNotFound, "cannot collect "+p), "path", p)
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", p)
		}

		if !info.IsDir() {
			add(p)
			continue
		}

		for file := range c.walker.WalkFiles(p, settings.NoRecurseDirs) {
			add(file)
		}
	}

	slices.SortFunc(units, func(a, b domain.Unit) int {
		return strings.Compare(a.NodeID, b.NodeID)
	})

	return units, nil
}

// relativeTo returns path relative to root in slash form, or path itself if it
// lies outside root.
func relativeTo(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
