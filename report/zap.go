package report

import (
	"context"

	"go.trai.ch/memo"
	"go.uber.org/zap"
)

// Zap returns a Reporter that writes one structured log line per event.
func Zap(logger *zap.Logger) memo.Reporter {
	return zapReporter{logger: logger}
}

type zapReporter struct {
	logger *zap.Logger
}

func (r zapReporter) Report(_ context.Context, ev memo.Event) {
	r.logger.Info("cache "+ev.Kind.String(),
		zap.String("location", ev.Location),
		zap.Time("started_at", ev.StartedAt),
		zap.Duration("duration", ev.Duration),
		zap.String("tool_version", ev.ToolVersion),
	)
}
