package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// Bridge implements sdktrace.SpanProcessor to bridge unit spans to a Renderer.
// Only spans carrying the unit path attribute are forwarded.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	if _, ok := lookup(s.Attributes(), ports.AttrPath); !ok {
		return
	}

	b.renderer.OnUnitStart(sc.SpanID().String(), s.Name(), s.StartTime())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	attrs := s.Attributes()
	if _, ok := lookup(attrs, ports.AttrPath); !ok {
		return
	}

	outcome := domain.OutcomePassed
	if v, ok := lookup(attrs, ports.AttrOutcome); ok {
		outcome = domain.Outcome(v.AsString())
	} else if s.Status().Code == codes.Error {
		outcome = domain.OutcomeFailed
	}

	var reason string
	if v, ok := lookup(attrs, ports.AttrReason); ok {
		reason = v.AsString()
	}

	b.renderer.OnUnitComplete(sc.SpanID().String(), s.EndTime(), outcome, reason)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func lookup(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}
