package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
	}{
		{
			name: "applies all env vars",
			envVars: map[string]string{
				EnvCatalogFile:  "/env/catalog.csv",
				EnvSnapshotFile: "/env/fleet.db",
				EnvCurrency:     "CAD",
				EnvLogLevel:     "debug",
			},
			changed:  map[string]bool{},
			initial:  DefaultConfig(),
			expected: Config{CatalogFile: "/env/catalog.csv", SnapshotFile: "/env/fleet.db", Currency: "CAD", LogLevel: "debug"},
		},
		{
			name:     "respects changed flags",
			envVars:  map[string]string{EnvCurrency: "CAD"},
			changed:  map[string]bool{FlagCurrency: true},
			initial:  DefaultConfig(),
			expected: DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvCatalogFile, EnvSnapshotFile, EnvCurrency, EnvLogLevel} {
				t.Setenv(key, tt.envVars[key])
			}
			cfg := tt.initial
			ApplyEnvConfig(&cfg, tt.changed)
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("FLEET_CURRENCY=GBP\nFLEET_LOG_LEVEL=info\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// t.Setenv restores the variables, even the ones set by godotenv.
	t.Setenv(EnvCurrency, "")
	os.Unsetenv(EnvCurrency)
	t.Setenv(EnvLogLevel, "error")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() unexpected error: %v", err)
	}
	if got := os.Getenv(EnvCurrency); got != "GBP" {
		t.Errorf("%s = %q, want GBP", EnvCurrency, got)
	}
	if got := os.Getenv(EnvLogLevel); got != "error" {
		t.Errorf("%s = %q, want the existing value error", EnvLogLevel, got)
	}

	if err := LoadEnvFile(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadEnvFile() on a missing file error = %v, want nil", err)
	}
}

func TestEnviron(t *testing.T) {
	env := DefaultConfig().Environ()
	want := []string{
		"FLEET_CATALOG_FILE=FleetData.csv",
		"FLEET_SNAPSHOT_FILE=FleetData.db",
		"FLEET_CURRENCY=USD",
		"FLEET_LOG_LEVEL=warn",
	}
	if len(env) != len(want) {
		t.Fatalf("Environ() = %v, want %v", env, want)
	}
	for i := range want {
		if env[i] != want[i] {
			t.Errorf("Environ()[%d] = %q, want %q", i, env[i], want[i])
		}
	}
}
