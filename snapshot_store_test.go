package fleet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotStoreLoadMissing(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "FleetData.db"))
	if store.Exists() {
		t.Fatalf("Exists() = true for a missing file")
	}
	f, err := store.Load("USD")
	if !errors.Is(err, ErrSnapshotMissing) {
		t.Errorf("Load() error = %v, want ErrSnapshotMissing", err)
	}
	if f == nil || f.Len() != 0 {
		t.Errorf("Load() should return an empty fleet")
	}
}

func TestSnapshotStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FleetData.db")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := NewSnapshotStore(path).Load("USD")
	if !errors.Is(err, ErrSnapshotCorrupt) {
		t.Errorf("Load() error = %v, want ErrSnapshotCorrupt", err)
	}
	if f == nil || f.Len() != 0 {
		t.Errorf("Load() should return an empty fleet")
	}
}

func TestSnapshotStoreSaveLoad(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "data", "FleetData.db"))
	want := newTestFleet(betty(), windDancer())

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	if !store.Exists() {
		t.Fatalf("Exists() = false after Save()")
	}
	if _, err := os.Stat(store.Path() + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temporary file left behind: %v", err)
	}

	got, err := store.Load("EUR")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got.Currency() != "USD" {
		t.Errorf("Currency() = %q, want the snapshot currency USD", got.Currency())
	}
	if diff := cmp.Diff(want.Boats(), got.Boats()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	// Save overwrites.
	if _, err := want.Remove("Betty"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}
	got, err = store.Load("USD")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got.Len() != 1 {
		t.Errorf("Len() = %d after overwrite, want 1", got.Len())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %q: %v", path, err)
	}
}

func TestOpen(t *testing.T) {
	const catalog = "power,Betty,1980,Benteau,23,14999.99\nsailing,Wind Dancer,2005,Catalina,32,85000.50\n"

	t.Run("catalog without snapshot", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "FleetData.csv"), catalog)

		f, err := Open(NewSnapshotStore(filepath.Join(dir, "FleetData.db")), filepath.Join(dir, "FleetData.csv"), "USD")
		if err != nil {
			t.Fatalf("Open() unexpected error: %v", err)
		}
		if f.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", f.Len())
		}
		for _, b := range f.Boats() {
			if got := b.Expenses.Fixed(2); got != "0.00" {
				t.Errorf("%q Expenses = %s, want 0.00", b.Name, got)
			}
		}
	})

	t.Run("snapshot takes priority", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "FleetData.csv"), catalog)
		store := NewSnapshotStore(filepath.Join(dir, "FleetData.db"))
		b := betty()
		b.Expenses = USD(42)
		if err := store.Save(newTestFleet(b)); err != nil {
			t.Fatal(err)
		}

		f, err := Open(store, filepath.Join(dir, "FleetData.csv"), "USD")
		if err != nil {
			t.Fatalf("Open() unexpected error: %v", err)
		}
		if diff := cmp.Diff([]*Boat{b}, f.Boats()); diff != "" {
			t.Errorf("Open() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("corrupt snapshot never falls back to catalog", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "FleetData.csv"), catalog)
		writeFile(t, filepath.Join(dir, "FleetData.db"), "FLTS")

		f, err := Open(NewSnapshotStore(filepath.Join(dir, "FleetData.db")), filepath.Join(dir, "FleetData.csv"), "USD")
		if !errors.Is(err, ErrSnapshotCorrupt) {
			t.Errorf("Open() error = %v, want ErrSnapshotCorrupt", err)
		}
		if f.Len() != 0 {
			t.Errorf("Len() = %d, want 0", f.Len())
		}
	})

	t.Run("missing catalog", func(t *testing.T) {
		dir := t.TempDir()
		f, err := Open(NewSnapshotStore(filepath.Join(dir, "FleetData.db")), filepath.Join(dir, "FleetData.csv"), "USD")
		if !errors.Is(err, ErrCatalogNotFound) {
			t.Errorf("Open() error = %v, want ErrCatalogNotFound", err)
		}
		if f.Len() != 0 {
			t.Errorf("Len() = %d, want 0", f.Len())
		}
	})

	t.Run("malformed catalog", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "FleetData.csv"), catalog+"rowing,Oops,1,2,3,4\n")
		f, err := Open(NewSnapshotStore(filepath.Join(dir, "FleetData.db")), filepath.Join(dir, "FleetData.csv"), "USD")
		if !errors.Is(err, ErrParse) {
			t.Errorf("Open() error = %v, want ErrParse", err)
		}
		if f.Len() != 0 {
			t.Errorf("Len() = %d, want 0", f.Len())
		}
	})
}
