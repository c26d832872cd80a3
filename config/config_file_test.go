package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				CatalogFile:  "/boats/catalog.csv",
				SnapshotFile: "/boats/fleet.db",
				Currency:     "EUR",
				LogLevel:     "debug",
			},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: Config{CatalogFile: "/boats/catalog.csv", SnapshotFile: "/boats/fleet.db", Currency: "EUR", LogLevel: "debug"},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{CatalogFile: "/file/catalog.csv", Currency: "EUR"},
			changed:    map[string]bool{FlagCatalog: true},
			initial:    Config{CatalogFile: "/flag/catalog.csv", Currency: "USD"},
			expected:   Config{CatalogFile: "/flag/catalog.csv", Currency: "EUR"},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "config.toml")
		content := strings.TrimSpace(`
catalog_file = "boats.csv"
snapshot_file = "boats.db"
currency = "GBP"
log_level = "info"
`)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		fc, err := LoadFileConfig(path)
		if err != nil {
			t.Fatalf("LoadFileConfig() unexpected error: %v", err)
		}
		want := FileConfig{CatalogFile: "boats.csv", SnapshotFile: "boats.db", Currency: "GBP", LogLevel: "info"}
		if fc != want {
			t.Errorf("LoadFileConfig() = %+v, want %+v", fc, want)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		if err := os.WriteFile(path, []byte("catalog_file = "), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFileConfig(path); err == nil {
			t.Error("LoadFileConfig() expected an error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFileConfig(filepath.Join(dir, "nope.toml")); !os.IsNotExist(err) {
			t.Errorf("LoadFileConfig() error = %v, want not exist", err)
		}
	})
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("catalog_file = \"file.csv\"\ncurrency = \"eur\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvCatalogFile, "env.csv")
	t.Setenv(EnvSnapshotFile, "")
	t.Setenv(EnvCurrency, "")
	t.Setenv(EnvLogLevel, "")

	cfg := DefaultConfig()
	cfg.SnapshotFile = "flag.db"
	changed := map[string]bool{FlagSnapshot: true}
	if err := Resolve(&cfg, path, filepath.Join(dir, "missing.env"), changed); err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}
	want := Config{CatalogFile: "env.csv", SnapshotFile: "flag.db", Currency: "EUR", LogLevel: "warn"}
	if cfg != want {
		t.Errorf("Resolve() = %+v, want %+v", cfg, want)
	}

	t.Run("explicit missing config file", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := Resolve(&cfg, filepath.Join(dir, "nope.toml"), filepath.Join(dir, "missing.env"), nil); err == nil {
			t.Error("Resolve() expected an error")
		}
	})
}
