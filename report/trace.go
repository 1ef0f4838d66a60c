package report

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/memo"
)

// Tracer returns a Reporter that emits one span per event. The span covers
// the producing run's interval; for hits that is when the artifact was
// originally computed, which may be long in the past.
func Tracer(tracer trace.Tracer) memo.Reporter {
	return traceReporter{tracer: tracer}
}

type traceReporter struct {
	tracer trace.Tracer
}

func (r traceReporter) Report(ctx context.Context, ev memo.Event) {
	_, span := r.tracer.Start(ctx, "memo."+ev.Kind.String(),
		trace.WithTimestamp(ev.StartedAt),
		trace.WithAttributes(
			attribute.String("memo.outcome", ev.Kind.String()),
			attribute.String("memo.location", ev.Location),
			attribute.String("memo.tool_version", ev.ToolVersion),
		),
	)
	span.End(trace.WithTimestamp(ev.StartedAt.Add(ev.Duration)))
}
