package telemetry

import (
	"context"

	"go.trai.ch/blackcheck/internal/core/ports"
)

var _ ports.Tracer = (*NoOpTracer)(nil)

// NoOpTracer records no spans. It still forwards the check plan to its
// renderer, so a session with nothing to check reports its collected count
// without an OpenTelemetry provider.
type NoOpTracer struct {
	renderer ports.Renderer
}

// NewNoOpTracer creates a tracer without a renderer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// WithRenderer sets the renderer that receives the check plan.
func (t *NoOpTracer) WithRenderer(r ports.Renderer) *NoOpTracer {
	t.renderer = r
	return t
}

// Start returns ctx unchanged with a span that discards everything.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, discardSpan{}
}

// EmitPlan forwards nodeIDs to the renderer, if any.
func (t *NoOpTracer) EmitPlan(_ context.Context, nodeIDs []string) {
	if t.renderer != nil {
		t.renderer.OnPlanEmit(nodeIDs)
	}
}

type discardSpan struct{}

func (discardSpan) End() {}

func (discardSpan) RecordError(error) {}

func (discardSpan) SetAttribute(string, any) {}

func (discardSpan) Write(p []byte) (int, error) {
	return len(p), nil
}
