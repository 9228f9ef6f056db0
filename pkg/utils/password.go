/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import (
	"os"

	"golang.org/x/term"
)

// PasswordReader obtains secret values from the operator without echoing.
type PasswordReader interface {
	ReadPassword() (string, error)
}

type RealPasswordReader struct{}

func (pr *RealPasswordReader) ReadPassword() (string, error) {
	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}

	return string(bytePassword), nil
}

// PR is the process-wide password reader; tests substitute their own.
var PR PasswordReader = &RealPasswordReader{}
