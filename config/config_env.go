package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Flag names, also used as keys of the 'changed' maps.
const (
	FlagCatalog  = "catalog"
	FlagSnapshot = "snapshot"
	FlagCurrency = "currency"
	FlagLogLevel = "log-level"
)

// Environment variables.
const (
	EnvCatalogFile  = "FLEET_CATALOG_FILE"
	EnvSnapshotFile = "FLEET_SNAPSHOT_FILE"
	EnvCurrency     = "FLEET_CURRENCY"
	EnvLogLevel     = "FLEET_LOG_LEVEL"
)

// LoadEnvFile loads variables from a .env file into the process environment,
// without overriding variables already set. An empty path means ".env".
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed loading env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies FLEET_* environment variables to cfg.
// These override file config but are overridden by flags (checked via changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString(FlagCatalog, os.Getenv(EnvCatalogFile), &cfg.CatalogFile)
	s.setString(FlagSnapshot, os.Getenv(EnvSnapshotFile), &cfg.SnapshotFile)
	s.setString(FlagCurrency, os.Getenv(EnvCurrency), &cfg.Currency)
	s.setString(FlagLogLevel, os.Getenv(EnvLogLevel), &cfg.LogLevel)
}

// Environ returns the configuration as FLEET_* variables, as passed to
// extension commands.
func (c Config) Environ() []string {
	return []string{
		EnvCatalogFile + "=" + c.CatalogFile,
		EnvSnapshotFile + "=" + c.SnapshotFile,
		EnvCurrency + "=" + c.Currency,
		EnvLogLevel + "=" + c.LogLevel,
	}
}
