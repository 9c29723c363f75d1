package telemetry

import (
	"context"

	"go.trai.ch/folio/internal/core/ports"
)

// Discard is a tracer whose build phases go nowhere. Builders constructed
// outside the wiring graph use it when phase timings are not wanted.
var Discard ports.Tracer = discard{}

// discard is both the tracer and every span it starts.
type discard struct{}

func (discard) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, discard{}
}

func (discard) End()                     {}
func (discard) RecordError(error)        {}
func (discard) SetAttribute(string, any) {}
