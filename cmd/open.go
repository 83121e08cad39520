package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockemu"
)

type openCmd struct {
	file string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "load a portfolio from a JSON file" }
func (*openCmd) Usage() string {
	return `semu open -file <path>

  Loads a portfolio from a file written by semu save and adds it to the
  data folder. A file with any invalid record is rejected whole.

Usage Examples:
$ semu open -file retirement.json

`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "File to load the portfolio from.")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	file, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open portfolio file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	p, err := stockemu.DecodePortfolio(file, quoteSource())
	file.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot load portfolio file %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	if err := r.AddPortfolio(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Opened %q as portfolio %d\n", p.Title(), r.Count()-1)
	return subcommands.ExitSuccess
}
