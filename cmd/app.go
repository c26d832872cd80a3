// Package cmd implements the fms command line application to manage a boat
// fleet.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fleet"
	"github.com/etnz/fleet/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands are the fms subcommands, registered by the main package.
var Commands = []subcommands.Command{
	&runCmd{},
	&printCmd{},
	&exportCmd{},
	&queryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	catalogFile  = flag.String(config.FlagCatalog, config.DefaultCatalogFile, "Path to the catalog CSV file imported when there is no snapshot")
	snapshotFile = flag.String(config.FlagSnapshot, config.DefaultSnapshotFile, "Path to the fleet snapshot restored at start and saved on exit")
	currency     = flag.String(config.FlagCurrency, fleet.DefaultCurrency, "ISO 4217 currency of the fleet amounts")
	logLevel     = flag.String(config.FlagLogLevel, config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	configFile   = flag.String("config", "", "Path to the TOML configuration file (default ~/.fleet/config.toml)")
	envFile      = flag.String("env-file", "", "Path to a .env file with FLEET_* variables (default .env)")
	Verbose      = flag.Bool("v", false, "Verbose mode, same as -log-level=debug")
)

// stdin and stdout are the operator streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// LoadConfig resolves the session configuration from the global flags, the
// environment and the configuration file.
func LoadConfig() (*config.Config, error) {
	changed := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { changed[f.Name] = true })

	cfg := &config.Config{
		CatalogFile:  *catalogFile,
		SnapshotFile: *snapshotFile,
		Currency:     *currency,
		LogLevel:     *logLevel,
	}
	if *Verbose && !changed[config.FlagLogLevel] {
		cfg.LogLevel = zerolog.LevelDebugValue
		changed[config.FlagLogLevel] = true
	}
	if err := config.Resolve(cfg, *configFile, *envFile, changed); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenFleet returns the fleet of the session: the snapshot if there is a
// readable one, the catalog otherwise, or an empty fleet.
//
// A corrupt snapshot yields an empty fleet and is only logged at debug level.
// A missing or malformed catalog is reported on stderr. In all cases a usable
// fleet is returned.
func OpenFleet(cfg *config.Config, log zerolog.Logger) *fleet.Fleet {
	store := fleet.NewSnapshotStore(cfg.SnapshotFile)
	f, err := fleet.Open(store, cfg.CatalogFile, cfg.Currency)
	switch {
	case err == nil:
		log.Debug().Int("boats", f.Len()).Msg("fleet loaded")
	case errors.Is(err, fleet.ErrSnapshotCorrupt):
		log.Debug().Err(err).Str("snapshot", cfg.SnapshotFile).Msg("snapshot not readable, starting with an empty fleet")
	default:
		fmt.Fprintf(os.Stderr, "Error loading catalog %q: %v\n", cfg.CatalogFile, err)
	}
	return f
}

// setup is the common prologue of the subcommands: it loads the
// configuration and creates the logger.
func setup() (*config.Config, zerolog.Logger, subcommands.ExitStatus) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, zerolog.Nop(), subcommands.ExitUsageError
	}
	return cfg, NewLogger(cfg), subcommands.ExitSuccess
}
