package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the content of the TOML configuration file.
type FileConfig struct {
	CatalogFile  string `toml:"catalog_file"`
	SnapshotFile string `toml:"snapshot_file"`
	Currency     string `toml:"currency"`
	LogLevel     string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse %q: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.fleet/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".fleet", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString(FlagCatalog, fc.CatalogFile, &cfg.CatalogFile)
	s.setString(FlagSnapshot, fc.SnapshotFile, &cfg.SnapshotFile)
	s.setString(FlagCurrency, fc.Currency, &cfg.Currency)
	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
}

// Resolve completes cfg from the configuration file, the .env file and the
// environment, then validates it.
//
// An empty configPath means the default path, whose absence is not an error.
// An explicit configPath must exist.
func Resolve(cfg *Config, configPath, envFile string, changed map[string]bool) error {
	path := configPath
	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		fc, err := LoadFileConfig(path)
		switch {
		case err == nil:
			ApplyFileConfig(cfg, fc, changed)
		case errors.Is(err, fs.ErrNotExist) && configPath == "":
			// no default config file, that's fine.
		default:
			return fmt.Errorf("load config: %w", err)
		}
	}

	if err := LoadEnvFile(envFile); err != nil {
		return err
	}
	ApplyEnvConfig(cfg, changed)

	return cfg.Validate()
}
