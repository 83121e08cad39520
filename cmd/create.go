package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type createCmd struct {
	title string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new empty portfolio" }
func (*createCmd) Usage() string {
	return `semu create -title <title>

  Creates a new empty portfolio with the given title. Titles must be
  unique, a duplicate is rejected.

Usage Examples:
$ semu create -title "Retirement"

`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the new portfolio.")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	if _, err := r.CreatePortfolio(c.title); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveRegistry(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save portfolios: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created portfolio %d: %q\n", r.Count()-1, c.title)
	return subcommands.ExitSuccess
}
