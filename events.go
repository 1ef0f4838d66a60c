package memo

import (
	"context"
	"time"
)

// EventKind classifies the terminal outcome of one engine call.
type EventKind uint8

const (
	// EventBypass indicates the computation ran with caching disabled.
	EventBypass EventKind = iota
	// EventCreate indicates the computation ran and a new artifact was written.
	EventCreate
	// EventHit indicates a stored artifact was loaded instead of computing.
	EventHit
	// EventOverwrite indicates the computation ran and replaced a stored artifact.
	EventOverwrite
)

// String returns the lower-case name of the kind.
func (k EventKind) String() string {
	switch k {
	case EventBypass:
		return "bypass"
	case EventCreate:
		return "create"
	case EventHit:
		return "hit"
	case EventOverwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// Event describes one terminal engine outcome. For hits the provenance
// fields carry what the stored artifact records, not the current run.
type Event struct {
	// Kind is the outcome class.
	Kind EventKind
	// Location is the artifact path.
	Location string
	// StartedAt is when the producing run began, in UTC.
	StartedAt time.Time
	// Duration is how long the producing run took.
	Duration time.Duration
	// ToolVersion is the version of the tool that produced the value.
	ToolVersion string
}

// Reporter receives one event per engine call that touches an artifact.
//
//go:generate mockgen -source=events.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report delivers one outcome. Implementations must not block.
	Report(ctx context.Context, ev Event)
}

// NopReporter discards every event. It is the engine default.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(context.Context, Event) {}
