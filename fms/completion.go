package main

import (
	"flag"

	"github.com/etnz/fleet/config"
	"github.com/etnz/fleet/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the fms command line for shell completion.
//
// Install it with COMP_INSTALL=1 fms.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	root.Flags[config.FlagLogLevel] = predict.Set{"trace", "debug", "info", "warn", "error"}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	})

	if topic, ok := root.Sub["topic"]; ok {
		topics, _ := docs.GetAllTopics()
		topic.Args = predict.Set(topics)
	}
	if export, ok := root.Sub["export"]; ok {
		export.Flags["format"] = predict.Set{"csv", "json"}
	}
	return root
}

// filePredictors are the flags taking a file name.
var filePredictors = map[string]complete.Predictor{
	config.FlagCatalog:  predict.Files("*.csv"),
	config.FlagSnapshot: predict.Files("*.db"),
	"config":            predict.Files("*.toml"),
	"env-file":          predict.Files("*"),
	"o":                 predict.Files("*"),
}

// flagPredictors returns a predictor for every flag of fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := filePredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Nothing
	})
	return flags
}
