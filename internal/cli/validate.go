/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"github.com/rack-management-toolkit/rackops/internal/dispatch"
	"github.com/rack-management-toolkit/rackops/pkg/utils"
)

// SelectMode picks the identifier interpretation from the three mode flags.
// At most one may be set; none means the identifier is a raw hostname or IP.
// Runs before resolution so a conflict never reaches a prompt or dispatch.
func SelectMode(rack, rackUnit, serial bool) (dispatch.Mode, error) {
	set := 0
	mode := dispatch.ModeNone

	if rack {
		set++
		mode = dispatch.ModeRack
	}

	if rackUnit {
		set++
		mode = dispatch.ModeRackUnit
	}

	if serial {
		set++
		mode = dispatch.ModeSerial
	}

	if set > 1 {
		return dispatch.ModeNone, utils.ModeConflictError
	}

	return mode, nil
}
