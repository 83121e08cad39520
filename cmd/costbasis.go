package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type costBasisCmd struct {
	index int
	at    string
}

func (*costBasisCmd) Name() string     { return "costbasis" }
func (*costBasisCmd) Synopsis() string { return "show how much was paid into a portfolio" }
func (*costBasisCmd) Usage() string {
	return `semu costbasis -p <index> [-at <moment>]

  Sums the cost (including commissions) of every purchase made strictly
  before the given moment. Needs no quotes.

Usage Examples:
$ semu costbasis -p 0 -at "2024-03-01T12:00"

`
}

func (c *costBasisCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.StringVar(&c.at, "at", "", "Moment to report as of (2006-01-02T15:04). Defaults to now.")
}

func (c *costBasisCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	at, err := parseMoment(c.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
		return subcommands.ExitUsageError
	}

	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	basis, err := r.CostBasis(c.index, at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Cost basis as of %s: %s\n", at, basis)
	return subcommands.ExitSuccess
}
