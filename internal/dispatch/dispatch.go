/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

// Package dispatch defines the contract between the resolution pipeline and
// the operation executors (IPMI power control, DCIM lookups). The executors
// themselves live with their protocol clients, not here.
package dispatch

import (
	"fmt"

	"github.com/rack-management-toolkit/rackops/internal/config"
	"github.com/rack-management-toolkit/rackops/pkg/utils"
)

// Mode is the identifier-interpretation strategy.
type Mode int

const (
	// ModeNone treats the identifier as a raw hostname or IP address.
	ModeNone Mode = iota
	ModeRack
	ModeRackUnit
	ModeSerial
)

func (m Mode) String() string {
	switch m {
	case ModeRack:
		return "rack"
	case ModeRackUnit:
		return "rack-unit"
	case ModeSerial:
		return "serial"
	default:
		return "none"
	}
}

// Request is the fully resolved operation request. By the time a Request
// exists, every field has passed through the precedence chain and
// validation; in particular Password is populated and must never be logged.
type Request struct {
	Command      string
	Identifier   string
	Mode         Mode
	CommandArgs  []string
	Username     string
	Password     string
	Force        bool
	Wait         bool
	DCIMProvider string
	NFSShare     string
	HTTPShare    string
	Verbosity    int
}

// Dispatcher executes a named operation against the target machine. The raw
// file and environment configuration travel along so operations can read
// provider-specific settings the resolution chain does not interpret.
// Failures propagate unchanged to the process exit status.
type Dispatcher interface {
	Dispatch(req *Request, fileCfg config.File, envCfg config.Env) error
}

// NewDispatcher returns the dispatcher wired into the binary. Operation
// executors register by providing their own Dispatcher to cli.ExecuteWithDispatcher;
// this default rejects every command.
func NewDispatcher() Dispatcher {
	return &unsupportedDispatcher{}
}

type unsupportedDispatcher struct{}

func (d *unsupportedDispatcher) Dispatch(req *Request, _ config.File, _ config.Env) error {
	return utils.OperationNotSupported.WithDetails(fmt.Sprintf("no executor registered for command %q", req.Command))
}
