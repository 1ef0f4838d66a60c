package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

type osStore struct{}

// OS returns the store backed by the local filesystem.
func OS() Store {
	return osStore{}
}

func (osStore) Exists(location string) (bool, error) {
	info, err := os.Stat(location)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat artifact"), "location", location)
	}
	if info.IsDir() {
		return false, zerr.With(zerr.New("artifact location is a directory"), "location", location)
	}
	return true, nil
}

func (osStore) Read(location string) ([]byte, error) {
	//nolint:gosec // Locations are caller-chosen artifact paths.
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read artifact"), "location", location)
	}
	return data, nil
}

func (osStore) Write(location string, data []byte) error {
	if dir := filepath.Dir(location); dir != "." {
		if err := os.MkdirAll(dir, DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create artifact directory"), "location", location)
		}
	}
	//nolint:gosec // Locations are caller-chosen artifact paths.
	if err := os.WriteFile(location, data, FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "location", location)
	}
	return nil
}

func (osStore) Remove(location string) error {
	if err := os.Remove(location); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "location", location)
	}
	return nil
}
