package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricebook/renderer"
	"github.com/google/subcommands"
)

type alertsCmd struct {
	consecutive bool
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "display items whose purchase price went up" }
func (*alertsCmd) Usage() string {
	return `pbk alerts [-consecutive]

  Lists the items whose latest purchase price is higher than the previous
  one, and the items whose price rose on each of their last three purchases.
  With -consecutive, only the latter are listed.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.consecutive, "consecutive", false, "Only list consecutive increases.")
}

func (c *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := loadReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AlertsMarkdown(report, c.consecutive))
	return subcommands.ExitSuccess
}
