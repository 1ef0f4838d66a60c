package memo

import (
	"bytes"
	"errors"
	"time"

	"go.trai.ch/memo/codec"
)

// Provenance records how and when an artifact's value was produced.
type Provenance struct {
	// ToolVersion is the version of the tool that produced the value.
	ToolVersion string
	// StartedAt is when the producing run began, in UTC.
	StartedAt time.Time
	// Duration is how long the producing run took.
	Duration time.Duration
}

// Artifact is a decoded stored result: the value in its generic form plus
// the provenance of the run that produced it.
type Artifact struct {
	Value      any
	Provenance Provenance
}

// ReadArtifact loads and decodes the artifact at the location without a
// target type. The value arrives in its generic form: int64, float64,
// []any, map[string]any, with objects resolved through the engine's type
// registry when their names are registered.
func ReadArtifact(e *Engine, location string) (Artifact, error) {
	format, err := e.codecs.Lookup(location)
	if err != nil {
		return Artifact{}, err
	}
	data, err := e.store.Read(location)
	if err != nil {
		return Artifact{}, errors.Join(ErrDecode, err)
	}

	var env codec.Envelope
	if err := format.Decode(bytes.NewReader(data), &env); err != nil {
		return Artifact{}, err
	}
	if err := env.Validate(); err != nil {
		return Artifact{}, err
	}
	value, err := env.Value.Interface(e.types)
	if err != nil {
		return Artifact{}, err
	}
	startedAt, err := env.StartedTime()
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Value: value,
		Provenance: Provenance{
			ToolVersion: env.ToolVersion,
			StartedAt:   startedAt,
			Duration:    env.Duration(),
		},
	}, nil
}
