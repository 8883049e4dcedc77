package domain

import (
	"github.com/dlclark/regexp2"
	"go.trai.ch/zerr"
)

// FilterConfig holds the include/exclude patterns read from [tool.black].
// A nil pattern is unset. A set pattern is compiled even when empty, and the
// empty pattern matches every path.
type FilterConfig struct {
	Include *string
	Exclude *string
}

// Pattern returns a pointer to p for building a FilterConfig.
func Pattern(p string) *string {
	return &p
}

// IsZero reports whether no pattern is configured.
func (c FilterConfig) IsZero() bool {
	return c.Include == nil && c.Exclude == nil
}

// patternOptions accepts Python named groups (?P<name>...) and anchors $ at
// the end of the path.
const patternOptions = regexp2.RE2

// Filter decides whether a unit is skipped by its path.
// Patterns use Python-compatible syntax and are searched anywhere in the path,
// not anchored to it, so "/build/" matches any path containing that segment.
type Filter struct {
	include *regexp2.Regexp
	exclude *regexp2.Regexp
}

// NewFilter compiles the patterns of cfg.
func NewFilter(cfg FilterConfig) (*Filter, error) {
	f := &Filter{}
	var err error
	if cfg.Include != nil {
		if f.include, err = regexp2.Compile(*cfg.Include, patternOptions); err != nil {
			return nil, zerr.With(zerr.Wrap(err, ErrInvalidPattern.Error()), "include", *cfg.Include)
		}
	}
	if cfg.Exclude != nil {
		if f.exclude, err = regexp2.Compile(*cfg.Exclude, patternOptions); err != nil {
			return nil, zerr.With(zerr.Wrap(err, ErrInvalidPattern.Error()), "exclude", *cfg.Exclude)
		}
	}
	return f, nil
}

// Skips reports whether the file at path is excluded, or not included while an
// include pattern is configured. Exclude wins over include.
func (f *Filter) Skips(path string) bool {
	if f == nil {
		return false
	}
	if f.exclude != nil && search(f.exclude, path) {
		return true
	}
	if f.include != nil && !search(f.include, path) {
		return true
	}
	return false
}

func search(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}
