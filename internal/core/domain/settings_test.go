package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/blackcheck/internal/core/domain"
)

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings("/project")

	assert.Equal(t, []string{"black"}, s.Formatter)
	assert.Equal(t, filepath.Join("/project", ".blackcheck_cache"), s.CachePath())
	assert.Equal(t, filepath.Join("/project", "pyproject.toml"), s.PyprojectPath())

	// Defaults are copies.
	s.Formatter[0] = "changed"
	assert.Equal(t, "black", domain.DefaultFormatterCommand[0])
}

func TestSettings_CachePathAbsolute(t *testing.T) {
	s := domain.DefaultSettings("/project")
	s.CacheDir = "/var/cache/blackcheck"

	assert.Equal(t, "/var/cache/blackcheck", s.CachePath())
}

func TestSettings_IsSourceFile(t *testing.T) {
	s := domain.DefaultSettings("/project")

	assert.True(t, s.IsSourceFile("/project/mod.py"))
	assert.False(t, s.IsSourceFile("/project/mod.pyi"))
	assert.False(t, s.IsSourceFile("/project/README"))
}

func TestCacheValuePath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/project/.blackcheck_cache", "v", "black", "mtimes"),
		domain.CacheValuePath("/project/.blackcheck_cache", domain.MtimesCacheKey))
}
