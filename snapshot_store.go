package fleet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SnapshotStore persists the fleet between sessions in a single snapshot file.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a store for the snapshot file at 'path'.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string { return s.path }

// Exists reports whether a snapshot file is present.
func (s *SnapshotStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load restores the fleet from the snapshot file.
//
// The returned fleet is never nil: when the error is not nil it is an empty
// fleet in 'currency'. A missing file returns an error matching
// ErrSnapshotMissing, and a file that cannot be read or decoded an error
// matching ErrSnapshotCorrupt.
func (s *SnapshotStore) Load(currency string) (*Fleet, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(currency), fmt.Errorf("%w: %q", ErrSnapshotMissing, s.path)
	}
	if err != nil {
		return New(currency), fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
	}
	defer file.Close()

	f, err := DecodeSnapshot(file)
	if err != nil {
		return New(currency), fmt.Errorf("could not decode snapshot %q: %w", s.path, err)
	}
	return f, nil
}

// Save overwrites the snapshot file with the whole fleet.
// It writes a temporary file first and renames it, so that a failed write
// leaves the previous snapshot in place.
func (s *SnapshotStore) Save(f *Fleet) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create directory for snapshot %q: %w", s.path, err)
		}
	}

	tmp := s.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("error opening snapshot file %q for writing: %w", tmp, err)
	}
	if err := EncodeSnapshot(file, f); err != nil {
		file.Close()
		os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error closing snapshot file %q: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}
