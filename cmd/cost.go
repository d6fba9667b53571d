package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/renderer"
	"github.com/google/subcommands"
)

type costCmd struct {
	yearly bool
	year   int
}

func (*costCmd) Name() string     { return "cost" }
func (*costCmd) Synopsis() string { return "display the weighted average cost of every item" }
func (*costCmd) Usage() string {
	return `pbk cost [-yearly] [-y <year>]

  Displays the quantity weighted average cost of every item, returns
  included. With -yearly the average is computed per calendar year, -y
  restricts it to a single year.
`
}

func (c *costCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yearly, "yearly", false, "Compute the average per year.")
	f.IntVar(&c.year, "y", 0, "Only display that year. Implies -yearly.")
}

func (c *costCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := loadReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.yearly && c.year == 0 {
		printMarkdown(renderer.TableMarkdown(report.AverageTable()))
		return subcommands.ExitSuccess
	}
	if c.year != 0 {
		report.Yearly = yearOnly(report.Yearly, c.year)
	}
	printMarkdown(renderer.TableMarkdown(report.YearlyTable()))
	return subcommands.ExitSuccess
}

func yearOnly(costs []pricebook.YearlyCost, year int) []pricebook.YearlyCost {
	var out []pricebook.YearlyCost
	for _, c := range costs {
		if c.Year == year {
			out = append(out, c)
		}
	}
	return out
}
