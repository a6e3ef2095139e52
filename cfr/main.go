package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/cofreapp/cofre/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion. Run
// COMP_INSTALL=1 cfr to install it.
func completion(commander *subcommands.Commander) *complete.Command {
	sub := make(map[string]*complete.Command)
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		sub[c.Name()] = &complete.Command{}
	})
	return &complete.Command{
		Sub:   sub,
		Flags: map[string]complete.Predictor{"file": predict.Files("*.json")},
	}
}

func main() {
	// A .env file can provide COFRE_FILE for the working directory.
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion(commander).Complete(commander.Name())

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
