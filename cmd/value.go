package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type valueCmd struct {
	index int
	at    string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "show what a portfolio is worth at market prices" }
func (*valueCmd) Usage() string {
	return `semu value -p <index> [-at <moment>]

  Prices every purchase made strictly before the given moment at the
  market price on that day. Fails when a quote is unavailable.

Usage Examples:
$ semu value -p 0 -at "2024-03-01T12:00"

`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.StringVar(&c.at, "at", "", "Moment to report as of (2006-01-02T15:04). Defaults to now.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	value, err := r.MarketValue(c.index, at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Market value as of %s: %s\n", at, value)
	return subcommands.ExitSuccess
}
