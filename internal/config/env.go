/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Env holds the recognized RACKOPS_* environment variables that were set
// and non-empty, keyed by their lowercase config names. Values are taken
// verbatim; validation happens during resolution.
type Env map[string]string

type envSpec struct {
	Username  string `env:"RACKOPS_USERNAME"`
	Password  string `env:"RACKOPS_PASSWORD"`
	NFSShare  string `env:"RACKOPS_NFS_SHARE"`
	HTTPShare string `env:"RACKOPS_HTTP_SHARE"`
}

// ReadEnv extracts the fixed set of recognized environment variables.
// Absent or empty variables simply omit their key.
func ReadEnv() (Env, error) {
	var spec envSpec

	if err := cleanenv.ReadEnv(&spec); err != nil {
		return nil, err
	}

	env := Env{}

	for key, val := range map[string]string{
		"username":   spec.Username,
		"password":   spec.Password,
		"nfs_share":  spec.NFSShare,
		"http_share": spec.HTTPShare,
	} {
		if val != "" {
			env[key] = val
		}
	}

	return env, nil
}
