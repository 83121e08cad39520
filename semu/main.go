package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"stockemu/cmd"
)

func main() {
	// Shell completion, a no-op outside of a completion context.
	completion().Complete("semu")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	portfolioFlags := map[string]complete.Predictor{
		"p": predict.Something,
	}
	momentFlags := map[string]complete.Predictor{
		"p":  predict.Something,
		"at": predict.Something,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"create":       {Flags: map[string]complete.Predictor{"title": predict.Something}},
			"open":         {Flags: map[string]complete.Predictor{"file": predict.Files("*.json")}},
			"save":         {Flags: map[string]complete.Predictor{"p": predict.Something, "file": predict.Files("*.json")}},
			"buy":          {Flags: momentFlags},
			"import":       {Flags: momentFlags},
			"detail":       {Flags: momentFlags},
			"costbasis":    {Flags: momentFlags},
			"value":        {Flags: momentFlags},
			"strategy":     {Flags: map[string]complete.Predictor{"p": predict.Something, "load": predict.Files("*.json")}},
			"invest":       {Flags: momentFlags},
			"invest-equal": {Flags: momentFlags},
			"dca":          {Flags: portfolioFlags},
			"topic":        {Args: predict.Set{"getting-started", "strategies", "dca", "file-formats", "readme", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"dir": predict.Dirs("*"),
			"key": predict.Something,
		},
	}
}
