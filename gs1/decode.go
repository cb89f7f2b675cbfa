/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/ai"
)

// Decode parses one GS1 element string into its validated elements.
//
// The input may carry an ISO/IEC 15424 symbology identifier and any of the
// configured separator spellings. Well-formed input decodes in one linear
// pass; input whose separators were stripped goes through the beam-search
// reconstructor. Decode never returns an error: every failure mode is
// described on the result itself.
func Decode(raw string, opts DecodeOptions) DecodeResult {
	result := DecodeResult{Raw: raw}

	n := normalize(raw, &opts)
	result.Normalized = n.text
	result.Symbology = n.symbology
	result.SeparatorsPresent = n.separatorsPresent

	if n.text == "" {
		result.addError(diag(InvalidFormat, "empty input"))
		result.Elements = []Element{}
		return result
	}

	tok := tokenize(n.text, &opts)
	result.Errors = append(result.Errors, tok.errors...)
	result.Warnings = append(result.Warnings, tok.warnings...)

	if !tok.ambiguous {
		result.Elements = tok.elements
		result.Confidence = 1.0
		finish(&result, &opts)
		return result
	}

	// The scan stopped at a boundary it could not determine, which only
	// happens when a separator the symbology requires was stripped.
	result.addWarning(diag(MissingSeparator,
		"variable-length value at offset %d has no terminating separator", tok.ambiguousAt))

	if !opts.AllowAmbiguous {
		result.Elements = tok.elements
		result.addError(diag(AmbiguousParse,
			"input is structurally ambiguous and reconstruction is disabled"))
		finish(&result, &opts)
		return result
	}

	rec := reconstruct(n.text, tok, &opts)
	result.Elements = rec.elements
	result.Alternatives = rec.alternatives
	result.Confidence = rec.confidence
	for _, d := range rec.errors {
		result.addError(d)
	}
	for _, d := range rec.warnings {
		result.addWarning(d)
	}

	finish(&result, &opts)
	return result
}

// finish applies the cross-cutting result rules: day-00 confidence capping,
// advisory pairing warnings, and strict mode.
func finish(r *DecodeResult, opts *DecodeOptions) {
	if r.Elements == nil {
		r.Elements = []Element{}
	}

	for i := range r.Elements {
		if r.Elements[i].DayUnspecified && r.Confidence > 0.9 {
			r.Confidence = 0.9
		}
	}

	pairingWarnings(r)

	if opts.StrictMode {
		for i := range r.Elements {
			if !r.Elements[i].Valid {
				r.addError(diag(InvalidFormat,
					"strict mode: element %s is invalid", r.Elements[i].AI))
				r.Confidence = 0
				break
			}
		}
	}
}

// pairingWarnings surfaces the dictionary's advisory cross-AI constraints.
// These never invalidate anything; they exist so inventory pipelines can
// notice a label that, say, carries a CONTENT (02) without its COUNT (37).
func pairingWarnings(r *DecodeResult) {
	present := make(map[string]bool, len(r.Elements))
	for i := range r.Elements {
		present[r.Elements[i].AI] = true
	}

	for i := range r.Elements {
		sp, ok := ai.Get(r.Elements[i].AI)
		if !ok {
			continue
		}
		if len(sp.RequiredWith) > 0 {
			satisfied := false
			for _, req := range sp.RequiredWith {
				if anyPresent(present, req) {
					satisfied = true
					break
				}
			}
			if !satisfied {
				r.addWarning(diag(InvalidFormat,
					"AI %s is conventionally paired with AI %s",
					sp.Code, strings.Join(sp.RequiredWith, " or ")))
			}
		}
		for _, ex := range sp.ExclusiveWith {
			if present[ex] {
				r.addWarning(diag(InvalidFormat,
					"AI %s and AI %s do not normally appear together", sp.Code, ex))
			}
		}
	}
}

// anyPresent treats a required code as satisfied when any catalogued code
// sharing that prefix is present, so req=01 is satisfied by an 01 element.
func anyPresent(present map[string]bool, code string) bool {
	if present[code] {
		return true
	}
	for have := range present {
		if len(have) > len(code) && have[:len(code)] == code {
			return true
		}
	}
	return false
}
