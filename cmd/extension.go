package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/config"
)

// Environment variables passed to extensions.
const (
	EnvInput    = "PBK_INPUT"
	EnvWorkbook = "PBK_WORKBOOK"
	EnvVerbose  = "PBK_VERBOSE"
)

// RunExtension attempts to find and execute an external pbk-<subcommand> binary,
// typically a price lookup front-end reading the files written by build.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "pbk-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		pricebook.Log.WithField("command", externalCmdName).Debugf("extension not found in PATH: %v", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass the resolved configuration as environment variables.
	cmd.Env = os.Environ()
	if cfg, err := LoadConfig(config.Config{}); err == nil {
		cmd.Env = append(cmd.Env, EnvInput+"="+cfg.Input)
		cmd.Env = append(cmd.Env, EnvWorkbook+"="+cfg.Workbook)
	} else {
		pricebook.Log.Warnf("extension %s runs without configuration: %v", externalCmdName, err)
	}
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
