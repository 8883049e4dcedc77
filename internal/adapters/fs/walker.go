// Package fs provides file system adapters for walking source trees and collecting units.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, in lexical order, without descending
// into directories whose name matches one of the norecurse globs.
// Paths are yielded with root as prefix. Unreadable entries are skipped.
func (w *Walker) WalkFiles(root string, norecurse []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != root && w.skipDir(d.Name(), norecurse) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// skipDir reports whether a directory name matches a norecurse glob.
func (w *Walker) skipDir(name string, norecurse []string) bool {
	for _, pattern := range norecurse {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
