package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/config"
	"github.com/etnz/pricebook/renderer"
	"github.com/google/subcommands"
)

type buildCmd struct {
	workbook string
	csv      string
	json     string
}

func (*buildCmd) Name() string { return "build" }
func (*buildCmd) Synopsis() string {
	return "build the price workbook and the LINE price lookup files from the ledger"
}
func (*buildCmd) Usage() string {
	return `pbk build [-o <workbook>] [-csv <file>] [-json <file>]

  Reads the purchase ledger, derives every price table and writes:

  - the report workbook, one sheet per table,
  - the LINE price lookup CSV files (latest price per item),
  - optionally, every table as a single JSON object.

  Output paths default to the configuration.
`
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.workbook, "o", "", "Path of the report workbook to write.")
	f.StringVar(&c.csv, "csv", "", "Path of the LINE price lookup CSV to write.")
	f.StringVar(&c.json, "json", "", "Path of the JSON export to write.")
}

func (c *buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Error: build takes no arguments.")
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig(config.Config{Workbook: c.workbook, LineCSV: c.csv, JSON: c.json})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, stats, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := pricebook.NewReport(ledger)
	if err := writeOutputs(cfg, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(report, stats, cfg.Outputs()))
	return subcommands.ExitSuccess
}

// writeOutputs writes every configured output. A failing output does not
// prevent the others from being written.
func writeOutputs(cfg *config.Config, r *pricebook.Report) error {
	var errs []error
	if cfg.Workbook != "" {
		errs = append(errs, pricebook.SaveWorkbook(cfg.Workbook, r))
	}
	for _, path := range []string{cfg.LineCSV, cfg.LineSingleCSV} {
		if path == "" {
			continue
		}
		errs = append(errs, writeFile(path, func(w io.Writer) error {
			return pricebook.EncodeLatestCSV(w, r)
		}))
	}
	if cfg.JSON != "" {
		errs = append(errs, writeFile(cfg.JSON, func(w io.Writer) error {
			return pricebook.EncodeJSON(w, r)
		}))
	}
	return errors.Join(errs...)
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	pricebook.Log.WithField("file", path).Info("written")
	return nil
}
