package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockemu"
)

type strategyCmd struct {
	index      int
	name       string
	weights    string
	amount     float64
	commission float64
	load       string
	out        string
}

func (*strategyCmd) Name() string     { return "strategy" }
func (*strategyCmd) Synopsis() string { return "define an investment strategy on a portfolio" }
func (*strategyCmd) Usage() string {
	return `semu strategy -p <index> -name <name> -weights <TICKER:W,...> -amount <amount> [-commission <fee>] [-o <file>]
semu strategy -p <index> -load <file>

  Defines a named strategy on a portfolio: a weighted allocation, an
  amount to invest per application, and a commission per purchase.
  Weights must sum to 100. With -o, also writes the strategy to its own
  file; with -load, reads it from one instead of flags.

Usage Examples:
$ semu strategy -p 0 -name "Tech Heavy" -weights "AAPL:60,GOOG:40" -amount 2000 -commission 5
$ semu strategy -p 1 -load tech-heavy.json

`
}

func (c *strategyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.StringVar(&c.name, "name", "", "Name of the strategy.")
	f.StringVar(&c.weights, "weights", "", "Comma separated TICKER:WEIGHT pairs, weights summing to 100.")
	f.Float64Var(&c.amount, "amount", 0, "Amount of money invested per application.")
	f.Float64Var(&c.commission, "commission", 0, "Commission charged per purchase.")
	f.StringVar(&c.load, "load", "", "Strategy file to load instead of defining one from flags.")
	f.StringVar(&c.out, "o", "", "Also write the strategy to this file.")
}

func (c *strategyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	var s stockemu.Strategy
	if c.load != "" {
		file, err := os.Open(c.load)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open strategy file %q: %v\n", c.load, err)
			return subcommands.ExitFailure
		}
		s, err = stockemu.DecodeStrategy(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot load strategy file %q: %v\n", c.load, err)
			return subcommands.ExitFailure
		}
	} else {
		weights, err := parseWeights(c.weights)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -weights: %v\n", err)
			return subcommands.ExitUsageError
		}
		s, err = stockemu.NewStrategy(c.name, weights, stockemu.M(c.amount), stockemu.M(c.commission))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	p, err := r.Portfolio(c.index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := p.DefineStrategy(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if err := writeStrategy(c.out, s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Defined strategy %q on portfolio %d\n", s.Name(), c.index)
	return subcommands.ExitSuccess
}
