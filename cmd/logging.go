package cmd

import (
	"os"
	"time"

	"github.com/etnz/fleet/config"
	"github.com/rs/zerolog"
)

// NewLogger returns the diagnostics logger, writing to stderr at the
// configured level. The operator display on stdout never goes through it.
func NewLogger(cfg *config.Config) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(cfg.Level()).
		With().Timestamp().Logger()
}
