package fleet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadCatalog opens and imports the catalog file at 'path'.
// A missing file returns an error matching ErrCatalogNotFound.
func LoadCatalog(path, currency string) (*Fleet, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrCatalogNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not open catalog file %q: %w", path, err)
	}
	defer file.Close()

	f, err := ImportFleet(file, currency)
	if err != nil {
		return nil, fmt.Errorf("could not import catalog file %q: %w", path, err)
	}
	return f, nil
}

// SaveCatalog writes the fleet to 'path' in the catalog format.
func SaveCatalog(path string, f *Fleet) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening catalog file %q for writing: %w", path, err)
	}
	defer file.Close()

	if err := ExportFleet(file, f); err != nil {
		return err
	}
	return file.Close()
}

// Open returns the fleet to start a session with.
//
// If the snapshot exists, it is restored and the catalog is never read. A
// snapshot that cannot be decoded yields an empty fleet and an error matching
// ErrSnapshotCorrupt. Without a snapshot, the catalog is imported; a missing
// or malformed catalog yields an empty fleet and the import error.
//
// The returned fleet is never nil.
func Open(store *SnapshotStore, catalog, currency string) (*Fleet, error) {
	f, err := store.Load(currency)
	if !errors.Is(err, ErrSnapshotMissing) {
		return f, err
	}
	f, err = LoadCatalog(catalog, currency)
	if err != nil {
		return New(currency), err
	}
	return f, nil
}
