package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockemu"
)

type investEqualCmd struct {
	index      int
	amount     float64
	at         string
	commission float64
}

func (*investEqualCmd) Name() string { return "invest-equal" }
func (*investEqualCmd) Synopsis() string {
	return "invest an amount equally across the stocks already held"
}
func (*investEqualCmd) Usage() string {
	return `semu invest-equal -p <index> -amount <amount> [-at <moment>] [-commission <fee>]

  Splits the amount equally across every ticker currently held and buys
  each share. Fails on an empty portfolio.

Usage Examples:
$ semu invest-equal -p 0 -amount 3000 -at "2024-02-05T10:30"

`
}

func (c *investEqualCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.Float64Var(&c.amount, "amount", 0, "Amount of money to spread across holdings.")
	f.StringVar(&c.at, "at", "", "Moment to invest at (2006-01-02T15:04). Defaults to now.")
	f.Float64Var(&c.commission, "commission", 0, "Commission charged per purchase.")
}

func (c *investEqualCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	p, err := r.Portfolio(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.InvestEqual(at, stockemu.M(c.amount), stockemu.M(c.commission)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Invested %s equally across portfolio %d at %s\n", stockemu.M(c.amount), c.index, at)
	return subcommands.ExitSuccess
}
