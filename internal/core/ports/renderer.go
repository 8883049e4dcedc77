package ports

import (
	"context"
	"time"

	"go.trai.ch/blackcheck/internal/core/domain"
)

// Renderer is the abstraction for session output.
// It decouples the check session from presentation, so the same event stream
// can drive verbose per-unit lines or compact progress dots.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop flushes any buffered output.
	Stop() error

	// OnSessionStart is called once the root directory is known.
	OnSessionStart(rootDir string)

	// OnPlanEmit is called with the node ids of all collected units, in check order.
	OnPlanEmit(nodeIDs []string)

	// OnUnitStart is called when a unit check begins.
	OnUnitStart(spanID, nodeID string, startTime time.Time)

	// OnUnitComplete is called when a unit check finishes.
	// reason is the skip reason for skipped units and empty otherwise.
	OnUnitComplete(spanID string, endTime time.Time, outcome domain.Outcome, reason string)

	// OnSessionFinish is called with all results once the session is over.
	OnSessionFinish(results []domain.Result, summary domain.Summary)
}
