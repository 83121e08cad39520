package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type investCmd struct {
	index int
	name  string
	at    string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "apply a strategy once" }
func (*investCmd) Usage() string {
	return `semu invest -p <index> -name <strategy> [-at <moment>]

  Buys every ticker of the strategy for its share of the strategy amount.
  If the moment is not a valid trading moment, it slides forward to the
  next one. Each purchase pays the strategy commission.

Usage Examples:
$ semu invest -p 0 -name "Tech Heavy" -at "2024-02-05T10:30"

`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.StringVar(&c.name, "name", "", "Name of the strategy to apply.")
	f.StringVar(&c.at, "at", "", "Moment to invest at (2006-01-02T15:04). Defaults to now.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := r.InvestWithStrategy(c.index, c.name, at); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Applied strategy %q on portfolio %d at %s\n", c.name, c.index, at)
	return subcommands.ExitSuccess
}
