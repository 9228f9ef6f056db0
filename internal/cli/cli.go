/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/rack-management-toolkit/rackops/internal/config"
	"github.com/rack-management-toolkit/rackops/internal/dispatch"
	"github.com/rack-management-toolkit/rackops/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Globals are flags that apply to every command
type Globals struct {
	Config   string           `help:"Configuration file path" short:"c" type:"path" default:"${config_path}"`
	Username string           `help:"IPMI username" short:"u"`
	Password bool             `help:"Prompt for the IPMI password" short:"p"`
	Force    bool             `help:"Force the operation" short:"f"`
	Wait     bool             `help:"Wait for the operation to complete" short:"w"`
	Dcim     string           `help:"DCIM provider used to locate the machine" short:"d"`
	Rack     bool             `help:"Interpret the identifier as a rack name" short:"r"`
	RackUnit bool             `help:"Interpret the identifier as a rack unit" short:"a" name:"rack-unit"`
	Serial   bool             `help:"Interpret the identifier as a serial number" short:"s"`
	Verbose  int              `help:"Increase logging verbosity (-v info, -vv debug)" short:"v" type:"counter"`
	Version  kong.VersionFlag `help:"Print version information and quit"`
}

// CLI represents the complete command line: a named operation, the machine
// identifier, and any trailing arguments the operation itself interprets.
// The three mode flags are independent booleans here; mutual exclusion is
// enforced by SelectMode after parsing.
type CLI struct {
	Globals

	Command     string   `arg:"" help:"Command which will be executed"`
	Identifier  string   `arg:"" help:"Identifier for the machine which the command will be executed against"`
	CommandArgs []string `arg:"" optional:"" name:"command-args" help:"Arguments of the command to be executed"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/rackops when XDG_CONFIG_HOME is
// set, otherwise $HOME/.config/rackops.
func DefaultConfigPath() string {
	if xdg := utils.LookupEnv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, utils.ProjectName)
	}

	home := utils.LookupEnv("HOME")
	if home == "" {
		home = "/"
	}

	return filepath.Join(home, ".config", utils.ProjectName)
}

// Parse creates a new Kong parser and parses the command line. args is the
// full argv including the program name. Extra options are applied after the
// defaults so callers can override the exit function or output streams.
func Parse(args []string, options ...kong.Option) (*CLI, error) {
	var cli CLI

	parserOptions := []kong.Option{
		kong.Name(utils.ProjectName),
		kong.Description("Datacenter rack operations against machines located by rack, rack unit or serial number"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"config_path": DefaultConfigPath(),
			"version":     utils.ProjectName + " " + utils.ProjectVersion,
		},
	}

	parser, err := kong.New(&cli, append(parserOptions, options...)...)
	if err != nil {
		return nil, err
	}

	// Slice off program name if present
	var parseArgs []string
	if len(args) > 1 {
		parseArgs = args[1:]
	}

	if _, err := parser.Parse(parseArgs); err != nil {
		return nil, utils.UsageError.WithDetails(err.Error())
	}

	return &cli, nil
}

// setupLogging configures the process-wide logger exactly once at startup.
// Verbosity counts above the supported levels are rejected before any
// configuration happens.
func setupLogging(verbosity int) error {
	levels := []log.Level{log.WarnLevel, log.InfoLevel, log.DebugLevel}
	if verbosity < 0 || verbosity >= len(levels) {
		return utils.VerbosityError.WithDetails(fmt.Sprintf("%d is not a supported verbosity level", verbosity))
	}

	log.SetLevel(levels[verbosity])
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	return nil
}

// Execute runs the full resolution pipeline against the default dispatcher
// and the real terminal password reader.
func Execute(args []string) error {
	return ExecuteWithDispatcher(args, dispatch.NewDispatcher(), utils.PR)
}

// ExecuteWithDispatcher runs the resolution pipeline with an injected
// dispatcher and password reader (useful for testing): parse, logging setup,
// configuration loading, mode validation, resolution, dispatch. Every error
// before dispatch is terminal; nothing half-configured ever reaches the
// dispatcher.
func ExecuteWithDispatcher(args []string, d dispatch.Dispatcher, pr utils.PasswordReader) error {
	cli, err := Parse(args)
	if err != nil {
		return err
	}

	if err := setupLogging(cli.Verbose); err != nil {
		return err
	}

	fileCfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	envCfg, err := config.ReadEnv()
	if err != nil {
		return utils.GenericFailure.WithDetails(err.Error())
	}

	mode, err := SelectMode(cli.Rack, cli.RackUnit, cli.Serial)
	if err != nil {
		return err
	}

	req, err := Resolve(cli, mode, fileCfg, envCfg, pr)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"invocation": uuid.NewString(),
		"command":    req.Command,
		"identifier": req.Identifier,
		"mode":       req.Mode.String(),
		"dcim":       req.DCIMProvider,
	}).Debug("dispatching operation")

	return d.Dispatch(req, fileCfg, envCfg)
}
