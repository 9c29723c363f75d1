package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/folio/internal/core/ports"
)

// PhaseLogger implements sdktrace.SpanProcessor by logging each finished
// span with its duration at debug level.
type PhaseLogger struct {
	logger ports.Logger
}

// NewPhaseLogger returns a PhaseLogger writing to logger.
func NewPhaseLogger(logger ports.Logger) *PhaseLogger {
	return &PhaseLogger{logger: logger}
}

// NewProvider returns an SDK tracer provider that reports phases to logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewPhaseLogger(logger)))
}

// OnStart does nothing.
func (p *PhaseLogger) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (p *PhaseLogger) OnEnd(s sdktrace.ReadOnlySpan) {
	if p.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	args := []any{"phase", s.Name(), "duration", s.EndTime().Sub(s.StartTime())}
	for _, kv := range s.Attributes() {
		args = append(args, string(kv.Key), kv.Value.Emit())
	}
	if s.Status().Code == codes.Error {
		args = append(args, "error", s.Status().Description)
	}
	p.logger.Debug("phase finished", args...)
}

// ForceFlush does nothing.
func (p *PhaseLogger) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (p *PhaseLogger) Shutdown(_ context.Context) error {
	return nil
}
