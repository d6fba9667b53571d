// Package cmd implements the CLI application to build and query a price book.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/config"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buildCmd{}, "price book")
	c.Register(&recordsCmd{}, "price book")
	c.Register(&latestCmd{}, "price book")
	c.Register(&costCmd{}, "price book")
	c.Register(&alertsCmd{}, "price book")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", config.DefaultFile, "Path to the YAML configuration file")
var inputFile = flag.String("i", "", "Path to the purchase ledger: a workbook with raw sheets, a text file or a .jsonl file. Overrides the configuration.")
var logFormat = flag.String("log-format", "", "Log format (text or json). Overrides the configuration.")
var rawMarkdown = flag.Bool("raw", false, "Print markdown as is, without terminal styling")

// Verbose turns on debug logging, every skipped ledger line is reported.
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// LoadConfig reads the configuration with the global flags and the command
// flags as overrides, and installs the configured logger.
func LoadConfig(overrides config.Config) (*config.Config, error) {
	overrides.Input = *inputFile
	overrides.LogFormat = *logFormat
	if *Verbose {
		overrides.LogLevel = "debug"
	}
	c, err := config.Load(*configFile, overrides)
	if err != nil {
		return nil, err
	}
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}
	pricebook.Log = logger
	return c, nil
}

// DecodeLedger loads the configured ledger.
func DecodeLedger(c *config.Config) (*pricebook.Ledger, pricebook.Stats, error) {
	l, stats, err := pricebook.Open(c.Input)
	if err != nil {
		return nil, stats, fmt.Errorf("could not load ledger %q: %w", c.Input, err)
	}
	return l, stats, nil
}

// loadReport is the common prologue of the query commands.
func loadReport() (*pricebook.Report, error) {
	c, err := LoadConfig(config.Config{})
	if err != nil {
		return nil, err
	}
	l, _, err := DecodeLedger(c)
	if err != nil {
		return nil, err
	}
	return pricebook.NewReport(l), nil
}
