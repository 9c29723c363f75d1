package telemetry_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"go.trai.ch/folio/internal/adapters/logger"
	"go.trai.ch/folio/internal/adapters/telemetry"
	"go.trai.ch/folio/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ sdktrace.SpanProcessor = (*telemetry.PhaseLogger)(nil)
}

func TestOTelTracer_Start(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	tracer := telemetry.NewOTelTracerFrom(tp, "test-tracer")

	ctx, parent := tracer.Start(t.Context(), "build", ports.WithAttribute("mode", "full"))
	_, child := tracer.Start(ctx, "build.detect")
	child.SetAttribute("files", 3)
	child.SetAttribute("changed", []string{"a.md"})
	child.SetAttribute("ratio", 0.5)
	child.SetAttribute("cached", true)
	child.RecordError(nil)
	child.End()
	parent.RecordError(errors.New("boom"))
	parent.End()

	spans := rec.Ended()
	require.Len(t, spans, 2)

	detect := spans[0]
	assert.Equal(t, "build.detect", detect.Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), detect.Parent().SpanID())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int("files", 3),
		attribute.StringSlice("changed", []string{"a.md"}),
		attribute.Float64("ratio", 0.5),
		attribute.Bool("cached", true),
	}, detect.Attributes())
	assert.Equal(t, codes.Unset, detect.Status().Code)

	build := spans[1]
	assert.Equal(t, "build", build.Name())
	assert.Contains(t, build.Attributes(), attribute.String("mode", "full"))
	assert.Equal(t, codes.Error, build.Status().Code)
	assert.Equal(t, "boom", build.Status().Description)
}

func TestDiscard_Start(t *testing.T) {
	tracer := telemetry.Discard

	ctx := t.Context()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestPhaseLogger(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	l.SetLevel(slog.LevelDebug)

	tracer := telemetry.NewOTelTracerFrom(telemetry.NewProvider(l), telemetry.InstrumentationName)
	_, span := tracer.Start(t.Context(), "build.index")
	span.SetAttribute("posts", 2)
	span.End()

	out := buf.String()
	assert.Contains(t, out, "phase finished")
	assert.Contains(t, out, "phase=build.index")
	assert.Contains(t, out, "posts=2")
	assert.Contains(t, out, "duration=")
}
