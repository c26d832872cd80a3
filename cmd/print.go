package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fleet/renderer"
	"github.com/google/subcommands"
)

// printCmd holds the flags for the 'print' subcommand.
type printCmd struct {
	markdown bool
}

func (*printCmd) Name() string     { return "print" }
func (*printCmd) Synopsis() string { return "display the fleet report" }
func (*printCmd) Usage() string {
	return `fms print [-md]

  Displays the fleet report without starting a session. Nothing is saved.
`
}

func (c *printCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Render the report as a markdown table")
}

func (c *printCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, log, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	fl := OpenFleet(cfg, log)

	if c.markdown {
		printMarkdown(renderer.Markdown(fl))
		return subcommands.ExitSuccess
	}
	if err := renderer.Report(stdout, fl); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
