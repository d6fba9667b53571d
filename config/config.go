// Package config reads the pricebook settings.
//
// Settings come, by increasing priority, from built-in defaults, an optional
// YAML file, PBK_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v6"
	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// DefaultFile is read when no config file is given. It may not exist.
const DefaultFile = "pricebook.yaml"

// Config lists every file the pipeline reads and writes, and how it logs.
type Config struct {
	// Input is the ledger: a workbook with raw sheets, a text file or normalized records.
	Input string `json:"input" env:"PBK_INPUT" validate:"required"`
	// Workbook is the report workbook written by build.
	Workbook string `json:"workbook" env:"PBK_WORKBOOK"`
	// LineCSV and LineSingleCSV receive the latest price table for the LINE lookup.
	LineCSV       string `json:"lineCsv" env:"PBK_LINE_CSV"`
	LineSingleCSV string `json:"lineSingleCsv" env:"PBK_LINE_SINGLE_CSV"`
	// JSON receives every table as a single JSON object. Empty to skip.
	JSON      string `json:"json,omitempty" env:"PBK_JSON"`
	LogLevel  string `json:"logLevel" env:"PBK_LOG_LEVEL" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
	LogFormat string `json:"logFormat" env:"PBK_LOG_FORMAT" validate:"omitempty,oneof=text json"`
}

// Defaults returns the file names used by the original price book scripts.
func Defaults() Config {
	return Config{
		Input:         "進貨明細.xlsx",
		Workbook:      "價格整理.xlsx",
		LineCSV:       "LINE_查價表.csv",
		LineSingleCSV: "LINE_查價_單品快速.csv",
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// Load reads the config file at path, then applies the environment, the
// overrides and finally the defaults for anything still unset.
//
// A missing DefaultFile is not an error, any other missing path is.
func Load(path string, overrides Config) (*Config, error) {
	var c Config
	if path == "" {
		path = DefaultFile
	}
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultFile:
	case err != nil:
		return nil, fmt.Errorf("could not read config: %w", err)
	default:
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("could not parse config %q: %w", path, err)
		}
	}

	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}
	if err := mergo.Merge(&c, overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("could not apply flags: %w", err)
	}
	if err := mergo.Merge(&c, Defaults()); err != nil {
		return nil, fmt.Errorf("could not apply defaults: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}
	var fields []string
	for _, fe := range invalid {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	sort.Strings(fields)
	return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
}

// Logger returns a logger writing to stderr with the configured level and format.
func (c *Config) Logger() (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return l, nil
}

// Outputs lists the configured output files, in writing order.
func (c *Config) Outputs() []string {
	var out []string
	for _, p := range []string{c.Workbook, c.LineCSV, c.LineSingleCSV, c.JSON} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
