package cmd

import (
	"flag"
	"slices"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletionCoversCommands(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("pbk", flag.ContinueOnError), "pbk")
	Register(commander)

	c := completion()
	commander.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		sub, ok := c.Sub[cmd.Name()]
		if !ok {
			t.Errorf("command %q has no completion", cmd.Name())
			return
		}
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			if _, ok := sub.Flags[f.Name]; !ok {
				t.Errorf("flag -%s of %q has no completion", f.Name, cmd.Name())
			}
		})
	})
}

func TestPredictTopics(t *testing.T) {
	got := predictTopics("")
	for _, want := range []string{"ledger", "reports", "*"} {
		if !slices.Contains(got, want) {
			t.Errorf("predictTopics() = %v, missing %q", got, want)
		}
	}
}
