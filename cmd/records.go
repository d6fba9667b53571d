package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricebook/renderer"
	"github.com/google/subcommands"
)

type recordsCmd struct {
	returns bool
}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "display the normalized ledger records" }
func (*recordsCmd) Usage() string {
	return `pbk records [-returns]

  Displays every ledger line that could be parsed, sorted by date.
  With -returns, only the returned items are listed.
`
}

func (c *recordsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.returns, "returns", false, "List returns only.")
}

func (c *recordsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := loadReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	table := report.RecordsTable()
	if c.returns {
		table = report.ReturnsTable()
	}
	printMarkdown(renderer.TableMarkdown(table))
	return subcommands.ExitSuccess
}
