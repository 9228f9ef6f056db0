/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

// CustomError is a terminal error carrying the process exit code to use.
// Details differentiates occurrences of the same error kind; identity for
// errors.Is is Code plus Message only.
type CustomError struct {
	Code    int
	Message string
	Details string
}

func (e CustomError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}

	return e.Message
}

func (e CustomError) Is(target error) bool {
	t, ok := target.(CustomError)

	return ok && t.Code == e.Code && t.Message == e.Message
}

// WithDetails returns a copy of the error with occurrence-specific details.
func (e CustomError) WithDetails(details string) CustomError {
	e.Details = details

	return e
}
