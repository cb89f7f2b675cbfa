/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1decode is the one-call convenience surface over the gs1
// decoder core: it decodes a GS1 element string with the default options.
// Callers that need to tune the search, the separator set, or strictness
// should use the gs1 package directly.
package gs1decode

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/gs1"
)

// Decode parses a GS1 element string with the default options, including
// beam-search reconstruction of separator-stripped input.
func Decode(raw string) gs1.DecodeResult {
	return gs1.Decode(raw, gs1.DefaultOptions())
}

// DecodeStrict parses a GS1 element string with strict validation: any
// element-level failure marks the whole result fatal.
func DecodeStrict(raw string) gs1.DecodeResult {
	opts := gs1.DefaultOptions()
	opts.StrictMode = true
	return gs1.Decode(raw, opts)
}
