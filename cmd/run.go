package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fleet"
	"github.com/etnz/fleet/menu"
	"github.com/google/subcommands"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run the interactive fleet management session" }
func (*runCmd) Usage() string {
	return `fms run

  Loads the fleet from the snapshot, or from the catalog if there is no
  snapshot, and runs the interactive menu. The fleet is saved to the
  snapshot when the operator exits with X.

  This is the default subcommand.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}

	m := menu.New(OpenFleet(cfg, log), menu.Config{
		In:     stdin,
		Out:    stdout,
		Store:  fleet.NewSnapshotStore(cfg.SnapshotFile),
		Logger: &log,
	})
	if err := m.Run(); err != nil {
		if errors.Is(err, menu.ErrInputClosed) {
			log.Warn().Msg("input closed before exit, fleet not saved")
		} else {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
