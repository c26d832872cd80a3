// Package config holds the configuration of the fleet management tool.
//
// Values are resolved with this precedence: command line flags, then
// environment variables (FLEET_*, optionally loaded from a .env file), then
// the TOML configuration file, then defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/etnz/fleet"
	"github.com/rs/zerolog"
)

// Default file names, relative to the working directory.
const (
	DefaultCatalogFile  = "FleetData.csv"
	DefaultSnapshotFile = "FleetData.db"
	DefaultLogLevel     = "warn"
)

// Config holds the resolved configuration of a session.
type Config struct {
	CatalogFile  string // catalog imported when there is no snapshot.
	SnapshotFile string // snapshot restored at start and saved on exit.
	Currency     string // ISO 4217 code of the fleet amounts.
	LogLevel     string // zerolog level name.
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		CatalogFile:  DefaultCatalogFile,
		SnapshotFile: DefaultSnapshotFile,
		Currency:     fleet.DefaultCurrency,
		LogLevel:     DefaultLogLevel,
	}
}

// Validate checks the configuration for errors and normalizes values.
func (c *Config) Validate() error {
	if c.CatalogFile == "" {
		return fmt.Errorf("catalog file is required")
	}
	if c.SnapshotFile == "" {
		return fmt.Errorf("snapshot file is required")
	}
	if c.CatalogFile == c.SnapshotFile {
		return fmt.Errorf("catalog and snapshot must be different files, got %q for both", c.CatalogFile)
	}

	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = fleet.DefaultCurrency
	}
	if !fleet.IsKnownCurrency(c.Currency) {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the zerolog level, or warn if LogLevel is invalid.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}
