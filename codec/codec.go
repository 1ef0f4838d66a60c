// Package codec reads and writes artifact envelopes in interchangeable
// formats.
//
// A Registry maps location suffixes to Format strategies; the longest
// registered suffix of a location wins, so ".json" and ".json.zst" coexist.
// Every Format carries the same logical model (Envelope holding a
// kind-tagged Value tree), which keeps the formats semantically equivalent:
// renaming a location from one suffix to another switches the bytes on
// disk, never the decoded result.
//
// Go values cross into the wire model through FromGo and come back through
// As or Value.Interface. Struct values decode through an explicit Types
// registry supplied by the caller; there is no implicit global resolution.
package codec

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Format encodes and decodes one on-disk representation of an Envelope.
// Implementations must be usable concurrently.
type Format interface {
	// Encode writes env to w.
	Encode(w io.Writer, env *Envelope) error
	// Decode reads an envelope from r into env.
	Decode(r io.Reader, env *Envelope) error
}

// Registry resolves locations to formats by suffix. Register during setup;
// Lookup is read-only afterwards.
type Registry struct {
	formats map[string]Format
}

// NewRegistry returns a registry with no formats.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// Register binds a suffix (including the leading dot, e.g. ".json") to a
// format. It panics when the suffix is malformed, the format is nil, or the
// suffix is already taken, since all three are setup mistakes.
func (r *Registry) Register(suffix string, f Format) {
	if !strings.HasPrefix(suffix, ".") || len(suffix) < 2 {
		panic(fmt.Sprintf("codec: invalid suffix %q", suffix))
	}
	if f == nil {
		panic(fmt.Sprintf("codec: nil format for suffix %q", suffix))
	}
	if _, ok := r.formats[suffix]; ok {
		panic(fmt.Sprintf("codec: suffix %q already registered", suffix))
	}
	r.formats[suffix] = f
}

// Lookup selects the format for a location by its longest registered
// suffix. It fails with ErrUnsupportedFormat before any I/O happens, so an
// unknown suffix can never leave partial state behind.
func (r *Registry) Lookup(location string) (Format, error) {
	var (
		best    string
		bestFmt Format
	)
	for suffix, f := range r.formats {
		if strings.HasSuffix(location, suffix) && len(suffix) > len(best) {
			best = suffix
			bestFmt = f
		}
	}
	if bestFmt == nil {
		return nil, errors.Join(ErrUnsupportedFormat, zerr.With(zerr.New("no format registered for location"), "location", location))
	}
	return bestFmt, nil
}

// Suffixes lists the registered suffixes in sorted order.
func (r *Registry) Suffixes() []string {
	out := make([]string, 0, len(r.formats))
	for suffix := range r.formats {
		out = append(out, suffix)
	}
	sort.Strings(out)
	return out
}

// Default returns a registry with the built-in formats: JSON, CBOR and
// YAML, plus zstd- and lz4-compressed variants of the two structured ones.
func Default() *Registry {
	r := NewRegistry()
	js := JSON()
	cb := CBOR()
	r.Register(".json", js)
	r.Register(".cbor", cb)
	r.Register(".yaml", YAML())
	r.Register(".yml", YAML())
	r.Register(".json.zst", Zstd(js))
	r.Register(".cbor.zst", Zstd(cb))
	r.Register(".json.lz4", LZ4(js))
	r.Register(".cbor.lz4", LZ4(cb))
	return r
}
