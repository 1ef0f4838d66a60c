// Package report adapts engine events to logs, plain text, and traces.
package report

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.trai.ch/memo"
)

// Writer returns a Reporter printing one line per event in arrival order.
func Writer(w io.Writer) memo.Reporter {
	return &writerReporter{w: w}
}

type writerReporter struct {
	mu sync.Mutex
	w  io.Writer
}

func (r *writerReporter) Report(_ context.Context, ev memo.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.w, "[%s] %s (%v, tool %s)\n", ev.Kind, ev.Location, ev.Duration, ev.ToolVersion)
}
