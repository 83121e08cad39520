package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type saveCmd struct {
	index int
	file  string
}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "write a portfolio to a JSON file" }
func (*saveCmd) Usage() string {
	return `semu save -p <index> -file <path>

  Writes the portfolio to a standalone JSON file, outside the data
  folder. Reload it anywhere with semu open.

Usage Examples:
$ semu save -p 0 -file retirement.json

`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.StringVar(&c.file, "file", "", "File to write the portfolio to.")
}

func (c *saveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := r.Portfolio(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writePortfolio(c.file, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Saved portfolio %d to %s\n", c.index, c.file)
	return subcommands.ExitSuccess
}
