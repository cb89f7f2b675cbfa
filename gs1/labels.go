/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"fmt"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/ai"
)

// friendlyNames maps the AIs inventory screens actually display to the
// labels their users expect. Everything else falls back to the dictionary's
// data title.
var friendlyNames = map[string]string{
	"00": "SSCC Code",
	"01": "GTIN Code",
	"02": "Content GTIN",
	"10": "Lot Number",
	"11": "Production Date",
	"13": "Packaging Date",
	"15": "Best Before Date",
	"17": "Expiry Date",
	"21": "Serial Number",
	"30": "Count",
	"37": "Count",
}

// FriendlyName returns the display label for an AI: the curated name when
// one exists, the dictionary title otherwise, and the code itself for AIs
// outside the dictionary.
func FriendlyName(code string) string {
	if name, ok := friendlyNames[code]; ok {
		return name
	}
	if sp, ok := ai.Get(code); ok {
		return sp.Title
	}
	return code
}

// FormatDayMonthYear renders a decoded date element as dd/mm/yyyy, with the
// day shown as XX when the element carried the day-unspecified form. It
// returns the element's raw value unchanged for non-date elements.
func FormatDayMonthYear(e Element) string {
	if !e.HasDate {
		return e.RawValue
	}
	if e.DayUnspecified {
		return fmt.Sprintf("XX/%02d/%04d", int(e.Date.Month()), e.Date.Year())
	}
	return fmt.Sprintf("%02d/%02d/%04d", e.Date.Day(), int(e.Date.Month()), e.Date.Year())
}
