package ports

import "go.trai.ch/blackcheck/internal/core/domain"

// ConfigLoader defines the interface for loading blackcheck configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// DiscoverRoot walks up from cwd to find the root directory.
	// It returns cwd itself when no settings file or pyproject.toml is found.
	DiscoverRoot(cwd string) (string, error)

	// LoadSettings reads the settings file of the given root directory.
	// A missing settings file yields the default settings.
	LoadSettings(root string) (*domain.Settings, error)

	// LoadFilter reads the include/exclude patterns from the [tool.black] table of pyproject.toml.
	// A missing or unreadable file yields the zero FilterConfig; it never fails.
	LoadFilter(pyprojectPath string) domain.FilterConfig
}
