/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

type ReturnCode int

var ProjectVersion string = "Development Build"

const (
	// ProjectName is the name of the executable
	ProjectName = "rackops"

	// DefaultDCIMProvider is used to locate machines when no -d flag is given
	DefaultDCIMProvider = "netbox"

	// ConfigSection is the config file section consulted by resolution,
	// after top-level keys
	ConfigSection = "rackops"

	// Environment variables recognized by the environment reader
	EnvUsername  = "RACKOPS_USERNAME"
	EnvPassword  = "RACKOPS_PASSWORD"
	EnvNFSShare  = "RACKOPS_NFS_SHARE"
	EnvHTTPShare = "RACKOPS_HTTP_SHARE"

	// Return Codes
	Success ReturnCode = 0
)

// (1-19) Basic errors outside of the resolution pipeline
var (
	GenericFailure = CustomError{Code: 10, Message: "GenericFailure"}
)

// (20-29) Input errors to rackops
var (
	UsageError        = CustomError{Code: 20, Message: "UsageError"}
	VerbosityError    = CustomError{Code: 21, Message: "VerbosityError", Details: "invalid verbosity"}
	ConfigParseError  = CustomError{Code: 22, Message: "ConfigParseError", Details: "invalid configuration file"}
	ModeConflictError = CustomError{Code: 23, Message: "ModeConflictError", Details: "can't use rack, rack unit and serial flags concurrently"}
	MissingPassword   = CustomError{Code: 24, Message: "MissingOrIncorrectPassword"}
	InvalidUserInput  = CustomError{Code: 25, Message: "InvalidUserInput"}
)

// (30-39) Dispatch errors
var (
	OperationNotSupported = CustomError{Code: 30, Message: "OperationNotSupported"}
)
