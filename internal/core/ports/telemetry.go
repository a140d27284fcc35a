package ports

import (
	"context"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Background marks spans of work that outlives the shell's wait.
	Background bool
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithBackground marks the span as covering a background execution.
func WithBackground() SpanOption {
	return func(c *SpanConfig) {
		c.Background = true
	}
}
