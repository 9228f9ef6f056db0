/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"fmt"

	"github.com/rack-management-toolkit/rackops/internal/config"
	"github.com/rack-management-toolkit/rackops/internal/dispatch"
	"github.com/rack-management-toolkit/rackops/pkg/utils"
)

// readUserInput reads one line of plain interactive input. Package variable
// so tests can substitute it.
var readUserInput = func(prompt string) (string, error) {
	fmt.Print(prompt)

	var value string
	if _, err := fmt.Scanln(&value); err != nil {
		return "", utils.InvalidUserInput.WithDetails(err.Error())
	}

	return value, nil
}

// Resolve merges the command line, environment, and config file into a
// single dispatch request. Precedence per field, highest first: explicit CLI
// value, environment variable, config file entry (sections flattened via
// File.Lookup), interactive prompt for essential fields, built-in default.
// Resolution performs no I/O beyond the explicit prompt calls.
func Resolve(c *CLI, mode dispatch.Mode, fileCfg config.File, envCfg config.Env, pr utils.PasswordReader) (*dispatch.Request, error) {
	req := &dispatch.Request{
		Command:      c.Command,
		Identifier:   c.Identifier,
		Mode:         mode,
		CommandArgs:  c.CommandArgs,
		Force:        c.Force,
		Wait:         c.Wait,
		DCIMProvider: resolveDCIM(c, fileCfg, envCfg),
		NFSShare:     fromSources("nfs_share", envCfg, fileCfg),
		HTTPShare:    fromSources("http_share", envCfg, fileCfg),
		Verbosity:    c.Verbose,
	}

	username, err := resolveUsername(c, fileCfg, envCfg)
	if err != nil {
		return nil, err
	}

	req.Username = username

	password, err := resolvePassword(c, fileCfg, envCfg, pr)
	if err != nil {
		return nil, err
	}

	req.Password = password

	return req, nil
}

// fromSources applies the env-over-file precedence for fields without a CLI
// flag or prompt.
func fromSources(key string, envCfg config.Env, fileCfg config.File) string {
	if v, ok := envCfg[key]; ok {
		return v
	}

	if v, ok := fileCfg.Lookup(key); ok {
		return v
	}

	return ""
}

// resolveDCIM applies the full precedence chain to the DCIM provider: the
// -d flag, then the configuration sources, then the built-in default. The
// default must not be applied at parse time or a config-file entry could
// never win.
func resolveDCIM(c *CLI, fileCfg config.File, envCfg config.Env) string {
	if c.Dcim != "" {
		return c.Dcim
	}

	if v := fromSources("dcim", envCfg, fileCfg); v != "" {
		return v
	}

	return utils.DefaultDCIMProvider
}

func resolveUsername(c *CLI, fileCfg config.File, envCfg config.Env) (string, error) {
	if c.Username != "" {
		return c.Username, nil
	}

	if v, ok := envCfg["username"]; ok {
		return v, nil
	}

	if v, ok := fileCfg.Lookup("username"); ok {
		return v, nil
	}

	username, err := readUserInput("IPMI username: ")
	if err != nil || username == "" {
		return "", utils.InvalidUserInput.WithDetails("a username is required")
	}

	return username, nil
}

// resolvePassword fills the one field that must never be empty by dispatch
// time. The --password flag is an explicit "ask me" signal and bypasses the
// environment and config file entirely.
func resolvePassword(c *CLI, fileCfg config.File, envCfg config.Env, pr utils.PasswordReader) (string, error) {
	if c.Password {
		return promptPassword(pr)
	}

	if v, ok := envCfg["password"]; ok {
		return v, nil
	}

	if v, ok := fileCfg.Lookup("password"); ok {
		return v, nil
	}

	return promptPassword(pr)
}

func promptPassword(pr utils.PasswordReader) (string, error) {
	fmt.Print("IPMI password: ")

	password, err := pr.ReadPassword()

	fmt.Println()

	if err != nil {
		return "", utils.MissingPassword.WithDetails(err.Error())
	}

	if password == "" {
		return "", utils.MissingPassword.WithDetails("password cannot be empty")
	}

	return password, nil
}
