package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fleet"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the fleet as catalog CSV or JSON" }
func (*exportCmd) Usage() string {
	return `fms export [-format csv|json] [-o <file>]

  Writes the current fleet, in the catalog format (csv) or as JSON.
  The catalog format does not carry expenses.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Output format: csv or json")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var write func(io.Writer, *fleet.Fleet) error
	switch c.format {
	case "csv":
		write = fleet.ExportFleet
	case "json":
		write = writeJSON
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q, expected csv or json\n", c.format)
		return subcommands.ExitUsageError
	}

	cfg, log, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	fl := OpenFleet(cfg, log)

	if c.output == "" {
		if err := write(stdout, fl); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting fleet: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := write(out, fl); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error exporting fleet to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	log.Info().Str("file", c.output).Int("boats", fl.Len()).Msg("fleet exported")
	return subcommands.ExitSuccess
}

// writeJSON writes the fleet as indented JSON.
func writeJSON(w io.Writer, f *fleet.Fleet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}
