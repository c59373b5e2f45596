package ports

import "context"

// Tracer records the progress of pipeline stages.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a new stage span.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one pipeline stage in flight.
type Span interface {
	// End completes the span.
	End()
	// RecordError records a failure for the span.
	RecordError(err error)
}
