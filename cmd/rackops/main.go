/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package main

import (
	"os"

	"github.com/rack-management-toolkit/rackops/internal/cli"
	"github.com/rack-management-toolkit/rackops/pkg/utils"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := cli.Execute(os.Args); err != nil {
		handleErrorAndExit(err)
	}
}

func handleErrorAndExit(err error) {
	if customErr, ok := err.(utils.CustomError); ok {
		log.Error(customErr.Error())
		os.Exit(customErr.Code)
	} else {
		log.Error(err.Error())
		os.Exit(utils.GenericFailure.Code)
	}
}
