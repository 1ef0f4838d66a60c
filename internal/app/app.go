// Package app implements the application layer for the memo CLI.
package app

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/memo/codec"
	"go.trai.ch/memo/store"
	"go.trai.ch/zerr"
)

// App exposes the artifact maintenance operations behind the CLI. It works
// on the wire envelope directly, so it can show any artifact without
// knowing the Go types that produced it.
type App struct {
	codecs *codec.Registry
	store  store.Store
}

// New creates a new App instance.
func New(codecs *codec.Registry, st store.Store) *App {
	return &App{
		codecs: codecs,
		store:  st,
	}
}

// InspectOptions controls how Inspect renders an artifact.
type InspectOptions struct {
	// JSON emits the envelope as indented JSON instead of the
	// human-readable summary.
	JSON bool

	// Styled enables terminal colors in the summary.
	Styled bool
}

// Inspect decodes the artifact at location and writes its provenance and
// value to w.
func (a *App) Inspect(_ context.Context, location string, opts InspectOptions, w io.Writer) error {
	env, err := a.decode(location)
	if err != nil {
		return err
	}
	if opts.JSON {
		return codec.JSON().Encode(w, env)
	}
	return renderEnvelope(w, location, env, opts.Styled)
}

// Row describes one artifact found by List. Err is set when the file
// carries a registered suffix but does not decode as an artifact.
type Row struct {
	Location    string
	ToolVersion string
	StartedAt   time.Time
	Duration    time.Duration
	Err         error
}

// List walks dir for files with a registered artifact suffix and decodes
// their envelopes concurrently. Rows come back sorted by location; a file
// that fails to decode keeps its row, with Err set, instead of aborting
// the listing.
func (a *App) List(ctx context.Context, dir string) ([]Row, error) {
	suffixes := a.codecs.Suffixes()

	var locations []string
	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(path, suffix) {
				locations = append(locations, filepath.ToSlash(path))
				return nil
			}
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk directory"), "dir", dir)
	}
	sort.Strings(locations)

	rows := make([]Row, len(locations))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, location := range locations {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := Row{Location: location}
			if env, err := a.decode(location); err != nil {
				row.Err = err
			} else {
				row.ToolVersion = env.ToolVersion
				row.StartedAt, _ = env.StartedTime()
				row.Duration = env.Duration()
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// Forget removes the artifacts at the given locations. Every location must
// carry a registered suffix; the check runs up front so one typo cannot
// delete unrelated files.
func (a *App) Forget(_ context.Context, locations ...string) error {
	for _, location := range locations {
		if _, err := a.codecs.Lookup(location); err != nil {
			return err
		}
	}
	for _, location := range locations {
		if err := a.store.Remove(location); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) decode(location string) (*codec.Envelope, error) {
	format, err := a.codecs.Lookup(location)
	if err != nil {
		return nil, err
	}
	data, err := a.store.Read(location)
	if err != nil {
		return nil, err
	}
	var env codec.Envelope
	if err := format.Decode(bytes.NewReader(data), &env); err != nil {
		return nil, err
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}
