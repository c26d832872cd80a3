// Command fms is the Fleet Management System: it keeps the inventory of a boat
// fleet and authorizes the expenses made on each boat.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/fleet/cmd"
	"github.com/google/subcommands"
)

// defaultCommand runs when no subcommand is given.
const defaultCommand = "run"

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// exits when invoked by the shell for completion.
	completion(commander).Complete("fms")

	flag.Parse()
	if flag.NArg() == 0 {
		flag.CommandLine.Parse(append(os.Args[1:], defaultCommand))
	}

	if name := flag.Arg(0); !isRegistered(commander, name) {
		cfg, err := cmd.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(int(subcommands.ExitUsageError))
		}
		if found, code := cmd.RunExtension(name, flag.Args()[1:], cfg); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// isRegistered reports whether name is a subcommand of commander.
func isRegistered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
