package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/memo"
	"go.trai.ch/memo/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sampleEvent() memo.Event {
	return memo.Event{
		Kind:        memo.EventHit,
		Location:    "results/run.json",
		StartedAt:   time.Date(2024, 5, 4, 3, 2, 1, 0, time.UTC),
		Duration:    1500 * time.Millisecond,
		ToolVersion: "0.4.1",
	}
}

func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := report.Writer(&buf)

	r.Report(context.Background(), sampleEvent())
	ev := sampleEvent()
	ev.Kind = memo.EventCreate
	ev.Location = "results/other.cbor"
	r.Report(context.Background(), ev)

	want := "[hit] results/run.json (1.5s, tool 0.4.1)\n" +
		"[create] results/other.cbor (1.5s, tool 0.4.1)\n"
	assert.Equal(t, want, buf.String())
}

func TestZap(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	r := report.Zap(zap.New(core))

	r.Report(context.Background(), sampleEvent())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cache hit", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "results/run.json", fields["location"])
	assert.Equal(t, 1500*time.Millisecond, fields["duration"])
	assert.Equal(t, "0.4.1", fields["tool_version"])
}

func TestTracer(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	r := report.Tracer(tp.Tracer("test"))

	ev := sampleEvent()
	r.Report(context.Background(), ev)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "memo.hit", span.Name())
	assert.True(t, span.StartTime().Equal(ev.StartedAt))
	assert.True(t, span.EndTime().Equal(ev.StartedAt.Add(ev.Duration)))

	attrs := span.Attributes()
	keys := make(map[string]string, len(attrs))
	for _, kv := range attrs {
		keys[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "hit", keys["memo.outcome"])
	assert.Equal(t, "results/run.json", keys["memo.location"])
	assert.Equal(t, "0.4.1", keys["memo.tool_version"])
}
