package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"stockemu"
)

type importCmd struct {
	index      int
	ticker     string
	cost       float64
	quantity   float64
	at         string
	commission float64
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "record a past purchase with an explicit cost and quantity" }
func (*importCmd) Usage() string {
	return `semu import -p <index> -ticker <ticker> -cost <unit_cost> -quantity <qty> -at <moment> [-commission <fee>]

  Records a purchase made outside the tool. No quote is looked up: the
  unit cost and quantity are taken as given. The moment still has to be
  a valid trading moment.

Usage Examples:
$ semu import -p 0 -ticker GOOG -cost 142.50 -quantity 21 -at "2023-11-06T11:00" -commission 5

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.StringVar(&c.ticker, "ticker", "", "Ticker symbol (1 to 5 upper-case letters).")
	f.Float64Var(&c.cost, "cost", 0, "Cost per unit paid at purchase.")
	f.Float64Var(&c.quantity, "quantity", 0, "Quantity of stock purchased.")
	f.StringVar(&c.at, "at", "", "Moment of the purchase (2006-01-02T15:04). Defaults to now.")
	f.Float64Var(&c.commission, "commission", 0, "Commission charged for the purchase.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := r.ImportStock(c.index, c.ticker, stockemu.M(c.cost), stockemu.Q(c.quantity), at, stockemu.M(c.commission)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %s x %s of %s at %s\n", stockemu.Q(c.quantity), stockemu.M(c.cost), c.ticker, at)
	return subcommands.ExitSuccess
}
