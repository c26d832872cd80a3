package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the fleet" }
func (*queryCmd) Usage() string {
	return `fms query <jsonpath>

  Evaluates a JSONPath expression over the JSON view of the fleet and prints
  the result as JSON. For instance:

    fms query '$[?(@.kind == "POWER")].name'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query requires exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}

	cfg, log, status := setup()
	if status != subcommands.ExitSuccess {
		return status
	}
	fl := OpenFleet(cfg, log)

	v, err := fl.Query(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
