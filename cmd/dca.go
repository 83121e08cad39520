package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"

	"stockemu"
)

type dcaCmd struct {
	index int
	name  string
	start string
	end   string
	freq  int
}

func (*dcaCmd) Name() string     { return "dca" }
func (*dcaCmd) Synopsis() string { return "replay a strategy over time (dollar cost averaging)" }
func (*dcaCmd) Usage() string {
	return `semu dca -p <index> -name <strategy> -start <moment> [-end <moment>] -freq <days>

  Applies the strategy repeatedly from start to end, advancing by freq
  days after each application. Weekend moments slide to the next weekday
  without disturbing the cadence. Omitting -end replays up to now.

  Stops at the first purchase that cannot be priced; purchases already
  made are kept.

Usage Examples:
$ semu dca -p 0 -name "Tech Heavy" -start "2023-01-02T10:00" -end "2024-01-02T10:00" -freq 30

`
}

func (c *dcaCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "p", 0, "Portfolio index.")
	f.StringVar(&c.name, "name", "", "Name of the strategy to replay.")
	f.StringVar(&c.start, "start", "", "First moment to invest at (2006-01-02T15:04).")
	f.StringVar(&c.end, "end", "", "Moment to stop before. Defaults to now.")
	f.IntVar(&c.freq, "freq", 0, "Days between applications. Must be positive.")
}

func (c *dcaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.start == "" {
		fmt.Fprintln(os.Stderr, "Error: -start is required.")
		return subcommands.ExitUsageError
	}
	start, err := stockemu.ParseDatetime(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
		return subcommands.ExitUsageError
	}
	var end stockemu.Datetime
	if c.end != "" {
		end, err = stockemu.ParseDatetime(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -end: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	// The replay count is not known up front (weekends slide), so the
	// bar is a spinner counting applications.
	bar := progressbar.Default(-1, "replaying")
	r.SetProgress(func(on stockemu.Datetime) {
		bar.Describe("invested at " + on.String())
		bar.Add(1)
	})

	replayErr := r.DollarCostAverage(c.index, c.name, start, end, c.freq)
	bar.Finish()
	fmt.Println()

	// Even a partial replay is saved, the purchases made before the
	// failure are real.
	if err := saveRegistry(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	if replayErr != nil {
		fmt.Fprintf(os.Stderr, "Replay stopped: %v\n", replayErr)
		return subcommands.ExitFailure
	}

	fmt.Printf("Replayed strategy %q on portfolio %d\n", c.name, c.index)
	return subcommands.ExitSuccess
}
