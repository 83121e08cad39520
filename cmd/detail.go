package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockemu"
	"stockemu/renderer"
)

type detailCmd struct {
	index      int
	at         string
	strategies bool
}

func (*detailCmd) Name() string     { return "detail" }
func (*detailCmd) Synopsis() string { return "show a portfolio's composition and cost basis" }
func (*detailCmd) Usage() string {
	return `semu detail [-p <index>] [-at <moment>] [-strategies]

  Shows the portfolio composition as of the given moment, with its cost
  basis. With -strategies, also lists the strategies defined on it.
  Without -p and with no arguments, lists all portfolios.

Usage Examples:
$ semu detail -p 0
$ semu detail -p 0 -at "2024-03-01T12:00" -strategies

`
}

func (c *detailCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", -1, "Portfolio index. Lists all portfolios when omitted.")
	f.StringVar(&c.at, "at", "", "Moment to report as of (2006-01-02T15:04). Defaults to now.")
	f.BoolVar(&c.strategies, "strategies", false, "Also list the strategies defined on the portfolio.")
}

func (c *detailCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.index < 0 {
		titles := r.ListPortfolios()
		if len(titles) == 0 {
			fmt.Println("No portfolios. Create one with `semu create`.")
			return subcommands.ExitSuccess
		}
		for i, title := range titles {
			fmt.Printf("%d: %s\n", i, title)
		}
		return subcommands.ExitSuccess
	}

	at, err := parseMoment(c.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := r.Portfolio(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := stockemu.NewDetailReport(p, at, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DetailMarkdown(report))

	if c.strategies {
		printMarkdown(renderer.StrategiesMarkdown(stockemu.NewStrategiesReport(p)))
	}

	return subcommands.ExitSuccess
}
