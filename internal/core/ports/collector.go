package ports

import "go.trai.ch/blackcheck/internal/core/domain"

// Collector defines the interface for turning paths into checkable units.
//
//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type Collector interface {
	// CollectFile returns a unit for path if enabled is set and path is an eligible source file.
	CollectFile(settings *domain.Settings, path string, enabled bool) (domain.Unit, bool)

	// Collect walks the given files and directories and returns every eligible unit, ordered by path.
	Collect(settings *domain.Settings, paths []string, enabled bool) ([]domain.Unit, error)
}
