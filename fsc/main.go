package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/folioscan/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, active only when invoked by the completion hooks.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"classify":    {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"scan":        {Flags: map[string]complete.Predictor{"backend": predict.Set{"gemini", "openrouter"}}},
			"search-isin": {},
			"topic":       {},
		},
	}
	completion.Complete("fsc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
