package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricebook/renderer"
	"github.com/google/subcommands"
)

type latestCmd struct{}

func (*latestCmd) Name() string     { return "latest" }
func (*latestCmd) Synopsis() string { return "display the latest purchase price of every item" }
func (*latestCmd) Usage() string {
	return `pbk latest

  Displays, for every item, the unit price of its most recent purchase.
  Items that were only ever returned have no price.
`
}

func (*latestCmd) SetFlags(f *flag.FlagSet) {}

func (*latestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := loadReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TableMarkdown(report.LatestTable()))
	return subcommands.ExitSuccess
}
