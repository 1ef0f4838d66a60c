package codec

import (
	"errors"
	"math"
	"time"

	"go.trai.ch/zerr"
)

// Envelope is the wire form of one persisted artifact: the value tree plus
// the provenance of the run that produced it. Field names and meaning are
// identical across every format.
type Envelope struct {
	Value           Value   `json:"value" yaml:"value" cbor:"value"`
	ToolVersion     string  `json:"tool_version" yaml:"tool_version" cbor:"tool_version"`
	StartedAt       string  `json:"started_at" yaml:"started_at" cbor:"started_at"`
	DurationSeconds float64 `json:"duration_seconds" yaml:"duration_seconds" cbor:"duration_seconds"`
}

// NewEnvelope assembles an envelope. The start time is normalized to UTC
// and rendered as RFC 3339 with nanoseconds; the duration is clamped at
// zero so clock oddities never persist a negative runtime.
func NewEnvelope(v Value, toolVersion string, startedAt time.Time, duration time.Duration) Envelope {
	if duration < 0 {
		duration = 0
	}
	return Envelope{
		Value:           v,
		ToolVersion:     toolVersion,
		StartedAt:       startedAt.UTC().Format(time.RFC3339Nano),
		DurationSeconds: duration.Seconds(),
	}
}

// StartedTime parses the envelope's start timestamp.
func (e *Envelope) StartedTime() (time.Time, error) {
	return parseWireTime(e.StartedAt)
}

// Duration converts the persisted seconds back to a duration.
func (e *Envelope) Duration() time.Duration {
	return time.Duration(e.DurationSeconds * float64(time.Second))
}

// Validate checks the required fields after a decode. Every violation is an
// ErrDecode: the bytes were readable as the format but are not an artifact.
func (e *Envelope) Validate() error {
	if e.Value.Kind == "" {
		return errors.Join(ErrDecode, zerr.New("missing value"))
	}
	if e.ToolVersion == "" {
		return errors.Join(ErrDecode, zerr.New("missing tool_version"))
	}
	if e.StartedAt == "" {
		return errors.Join(ErrDecode, zerr.New("missing started_at"))
	}
	if _, err := e.StartedTime(); err != nil {
		return err
	}
	if e.DurationSeconds < 0 || math.IsNaN(e.DurationSeconds) || math.IsInf(e.DurationSeconds, 0) {
		return errors.Join(ErrDecode, zerr.With(zerr.New("invalid duration_seconds"), "value", e.DurationSeconds))
	}
	return nil
}
