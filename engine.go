// Package memo persists the results of expensive computations as
// self-describing artifacts and replays them on later runs. A computation
// is an ordinary function; pointing it at a location turns it into a
// cached one, and the location's suffix picks the artifact format.
package memo

import (
	"bytes"
	"context"
	"errors"

	"go.trai.ch/memo/codec"
	"go.trai.ch/memo/store"
)

// Engine bundles the collaborators of a cached computation: the format
// registry, the type registry for decoding, the byte store, the outcome
// reporter, and the clock. Construct with New; the With methods mutate the
// engine and return it for chaining.
type Engine struct {
	codecs      *codec.Registry
	types       *codec.Types
	store       store.Store
	reporter    Reporter
	clock       Clock
	toolVersion string
}

// New returns an engine with the default collaborators: all built-in
// formats, an empty type registry, the OS store, no reporting, the system
// clock, and the library version as the tool version.
func New() *Engine {
	return &Engine{
		codecs:      codec.Default(),
		types:       codec.NewTypes(),
		store:       store.OS(),
		reporter:    NopReporter{},
		clock:       systemClock{},
		toolVersion: Version(),
	}
}

// WithCodecs replaces the format registry.
func (e *Engine) WithCodecs(r *codec.Registry) *Engine {
	e.codecs = r
	return e
}

// WithTypes replaces the type registry consulted when decoding objects.
func (e *Engine) WithTypes(t *codec.Types) *Engine {
	e.types = t
	return e
}

// WithStore replaces the byte store.
func (e *Engine) WithStore(s store.Store) *Engine {
	e.store = s
	return e
}

// WithReporter replaces the outcome reporter.
func (e *Engine) WithReporter(r Reporter) *Engine {
	e.reporter = r
	return e
}

// WithClock replaces the clock supplying run timestamps.
func (e *Engine) WithClock(c Clock) *Engine {
	e.clock = c
	return e
}

// WithToolVersion replaces the version string stamped into new artifacts.
func (e *Engine) WithToolVersion(v string) *Engine {
	e.toolVersion = v
	return e
}

type runOptions struct {
	overwrite bool
}

// RunOption adjusts a single engine call.
type RunOption func(*runOptions)

// WithOverwrite forces the computation to run and replace whatever is
// stored at the location.
func WithOverwrite() RunOption {
	return func(o *runOptions) {
		o.overwrite = true
	}
}

// RunOrLoad returns the value stored at location, or runs thunk and
// persists its result there. An empty location disables caching and calls
// the thunk directly. Existence is checked once, before the thunk runs; a
// stored artifact that cannot be decoded fails with ErrDecode rather than
// recomputing. Thunk errors propagate unwrapped and leave the location
// untouched. Writes replace the whole artifact and are not atomic, so
// concurrent first runs of the same location race and the last writer
// wins.
func RunOrLoad[T any](ctx context.Context, e *Engine, location string, thunk func(context.Context) (T, error), opts ...RunOption) (T, error) {
	var zero T
	if thunk == nil {
		return zero, ErrNilThunk
	}
	if location == "" {
		return thunk(ctx)
	}

	format, err := e.codecs.Lookup(location)
	if err != nil {
		return zero, err
	}

	exists, err := e.store.Exists(location)
	if err != nil {
		return zero, err
	}

	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	if exists && !o.overwrite {
		return load[T](ctx, e, location, format)
	}

	kind := EventCreate
	if exists {
		kind = EventOverwrite
	}

	start := e.clock.Now()
	value, err := thunk(ctx)
	duration := e.clock.Now().Sub(start)
	if err != nil {
		return zero, err
	}
	if duration < 0 {
		duration = 0
	}
	startedAt := start.UTC()

	wire, err := codec.FromGo(value, e.types)
	if err != nil {
		return zero, err
	}
	env := codec.NewEnvelope(wire, e.toolVersion, startedAt, duration)

	// Encode fully in memory first so an encoding failure writes nothing.
	var buf bytes.Buffer
	if err := format.Encode(&buf, &env); err != nil {
		return zero, err
	}
	if err := e.store.Write(location, buf.Bytes()); err != nil {
		return zero, err
	}

	e.reporter.Report(ctx, Event{
		Kind:        kind,
		Location:    location,
		StartedAt:   startedAt,
		Duration:    duration,
		ToolVersion: e.toolVersion,
	})
	return value, nil
}

func load[T any](ctx context.Context, e *Engine, location string, format codec.Format) (T, error) {
	var zero T

	data, err := e.store.Read(location)
	if err != nil {
		return zero, errors.Join(ErrDecode, err)
	}

	var env codec.Envelope
	if err := format.Decode(bytes.NewReader(data), &env); err != nil {
		return zero, err
	}
	if err := env.Validate(); err != nil {
		return zero, err
	}
	value, err := codec.As[T](env.Value, e.types)
	if err != nil {
		return zero, err
	}
	startedAt, err := env.StartedTime()
	if err != nil {
		return zero, err
	}

	e.reporter.Report(ctx, Event{
		Kind:        EventHit,
		Location:    location,
		StartedAt:   startedAt,
		Duration:    env.Duration(),
		ToolVersion: env.ToolVersion,
	})
	return value, nil
}
