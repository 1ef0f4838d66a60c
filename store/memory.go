package store

import (
	"io/fs"
	"sort"
	"sync"

	"go.trai.ch/zerr"
)

// Mem is an in-memory Store keyed by location. It is safe for concurrent
// use and mainly serves tests and short-lived pipelines that want caching
// semantics without touching disk.
type Mem struct {
	mu    sync.Mutex
	files map[string][]byte
}

// Memory returns an empty in-memory store.
func Memory() *Mem {
	return &Mem{files: make(map[string][]byte)}
}

func (m *Mem) Exists(location string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[location]
	return ok, nil
}

func (m *Mem) Read(location string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[location]
	if !ok {
		return nil, zerr.With(zerr.Wrap(fs.ErrNotExist, "failed to read artifact"), "location", location)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Mem) Write(location string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[location] = cp
	return nil
}

func (m *Mem) Remove(location string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[location]; !ok {
		return zerr.With(zerr.Wrap(fs.ErrNotExist, "failed to remove artifact"), "location", location)
	}
	delete(m.files, location)
	return nil
}

// Locations returns every stored location in sorted order.
func (m *Mem) Locations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for loc := range m.files {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}
