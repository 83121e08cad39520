package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockemu"
)

type buyCmd struct {
	index      int
	ticker     string
	amount     float64
	at         string
	commission float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy stock by amount at a given moment" }
func (*buyCmd) Usage() string {
	return `semu buy -p <index> -ticker <ticker> -amount <amount> -at <moment> [-commission <fee>]

  Buys stock for the given amount of money. The quantity is derived from
  the opening price on that day, so a quote must be available. The moment
  must be a valid trading moment: a weekday, inside trading hours, not in
  the future.

Usage Examples:
$ semu buy -p 0 -ticker AAPL -amount 4000 -at "2024-02-05T10:30"

`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol (1 to 5 upper-case letters).")
	f.Float64Var(&c.amount, "amount", 0, "Amount of money to invest.")
	f.StringVar(&c.at, "at", "", "Moment of the purchase (2006-01-02T15:04). Defaults to now.")
	f.Float64Var(&c.commission, "commission", 0, "Commission charged for the purchase.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := r.BuyStock(c.index, c.ticker, stockemu.M(c.amount), at, stockemu.M(c.commission)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %s of %s at %s\n", stockemu.M(c.amount), c.ticker, at)
	return subcommands.ExitSuccess
}
