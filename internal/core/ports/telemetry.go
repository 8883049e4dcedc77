package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

const (
	// AttrOutcome is the span attribute carrying a unit's outcome.
	AttrOutcome = "blackcheck.outcome"
	// AttrReason is the span attribute carrying a unit's skip reason.
	AttrReason = "blackcheck.reason"
	// AttrPath is the span attribute carrying a unit's file path.
	AttrPath = "blackcheck.path"
	// AttrMtime is the span attribute carrying a unit's modification time.
	AttrMtime = "blackcheck.mtime"
)

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	// EmitPlan signals that a set of units is planned for checking.
	EmitPlan(ctx context.Context, nodeIDs []string)
}

// Span represents a unit of work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Attributes are set on the span when it starts.
	Attributes map[string]any
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithAttribute sets an attribute when the span starts.
func WithAttribute(key string, value any) SpanOption {
	return func(c *SpanConfig) {
		if c.Attributes == nil {
			c.Attributes = make(map[string]any)
		}
		c.Attributes[key] = value
	}
}
