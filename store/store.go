// Package store persists artifact bytes behind a small location-keyed port.
package store

const (
	// DirPerm is the default permission for artifact directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for artifact files (rw-r--r--).
	FilePerm = 0o644
)

// Store is the byte-level persistence port of the engine. Locations are
// opaque keys to the engine; the OS implementation treats them as file paths.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type Store interface {
	// Exists reports whether an artifact is present at the location.
	Exists(location string) (bool, error)

	// Read returns the artifact bytes at the location.
	Read(location string) ([]byte, error)

	// Write replaces the artifact at the location, creating parent
	// directories as needed. Writes truncate in place and are not atomic:
	// concurrent writers race and the last one wins.
	Write(location string, data []byte) error

	// Remove deletes the artifact at the location.
	Remove(location string) error
}
