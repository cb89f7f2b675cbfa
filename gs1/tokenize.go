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

// tokenization is the outcome of the fast-path scan: either a complete
// element list, or the elements consumed before the scanner hit a boundary
// it could not determine, with ambiguous set and ambiguousAt the offset of
// the AI whose value length is in question.
type tokenization struct {
	elements    []Element
	errors      []Diagnostic
	warnings    []Diagnostic
	ambiguous   bool
	ambiguousAt int
}

// tokenize runs a single left-to-right pass over the normalized input.
//
// Fixed-length values are consumed by count. Variable-length values run to
// the next sentinel; with no sentinel in sight, a value may run to the end
// of the input only if no split point inside it would leave a recognizable
// continuation AI -- otherwise the boundary is genuinely ambiguous and the
// scanner stops so the reconstructor can take over from its current state.
func tokenize(s string, opts *DecodeOptions) tokenization {
	var tok tokenization
	pos := 0
	prevFixed := false
	haveElements := false

	for pos < len(s) {
		if s[pos] == Sentinel {
			// A separator after a fixed-length value is redundant
			// but harmless; note it and move on.
			if haveElements && prevFixed {
				tok.warnings = append(tok.warnings,
					diag(ExtraSeparator, "redundant separator at offset %d", pos))
			}
			pos++
			continue
		}

		sp := ai.Lookup(s, pos)
		if sp == nil {
			end := skipUnknown(s, pos)
			tok.errors = append(tok.errors,
				diag(UnknownAI, "unrecognized AI at offset %d (%q)", pos, clip(s[pos:end])))
			pos = end
			continue
		}

		vstart := pos + len(sp.Code)

		if sp.FixedLength {
			vend := vstart + sp.MinLength
			if vend > len(s) {
				e := buildElement(sp, s[vstart:], pos, opts)
				e.addError(diag(TruncatedData, "AI %s needs %d characters, only %d remain",
					sp.Code, sp.MinLength, len(s)-vstart))
				tok.elements = append(tok.elements, e)
				tok.errors = append(tok.errors,
					diag(TruncatedData, "input ends inside the value of AI %s", sp.Code))
				return tok
			}
			tok.elements = append(tok.elements, buildElement(sp, s[vstart:vend], pos, opts))
			pos = vend
			prevFixed = true
			haveElements = true
			continue
		}

		// variable length: the value runs to the next sentinel...
		if i := strings.IndexByte(s[vstart:], Sentinel); i >= 0 {
			tok.elements = append(tok.elements, buildElement(sp, s[vstart:vstart+i], pos, opts))
			pos = vstart + i + 1
			prevFixed = false
			haveElements = true
			continue
		}

		// ...or to the end of the input, but only when no split point
		// would leave a recognizable continuation AI behind it.
		rest := len(s) - vstart
		if rest > sp.MaxLength || splitPoint(s, vstart, sp) {
			tok.ambiguous = true
			tok.ambiguousAt = pos
			return tok
		}
		tok.elements = append(tok.elements, buildElement(sp, s[vstart:], pos, opts))
		pos = len(s)
		prevFixed = false
		haveElements = true
	}

	return tok
}

// splitPoint reports whether some legal length for the variable value
// starting at vstart leaves a continuation that begins with a catalogued AI
// admitting a conforming value. When one exists, the true boundary cannot
// be determined by scanning alone.
func splitPoint(s string, vstart int, sp *ai.Spec) bool {
	limit := len(s) - vstart
	for l := sp.MinLength; l <= sp.MaxLength && l < limit; l++ {
		next := ai.Lookup(s, vstart+l)
		if next != nil && admitsValue(s, vstart+l, next) {
			return true
		}
	}
	return false
}

// admitsValue reports whether the data following the AI code at pos could
// be a conforming value for it: enough characters remain before the next
// sentinel (or end of input), and numeric AIs see only digits where their
// minimum length requires them.
func admitsValue(s string, pos int, sp *ai.Spec) bool {
	vstart := pos + len(sp.Code)
	avail := len(s) - vstart
	if i := strings.IndexByte(s[vstart:], Sentinel); i >= 0 {
		avail = i
	}
	need := sp.MinLength
	if avail < need {
		return false
	}
	if sp.DataType == ai.Numeric {
		for i := vstart; i < vstart+need; i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}

// skipUnknown advances past an unrecognizable region: to the next sentinel
// if there is one, else to the end of input.
func skipUnknown(s string, pos int) int {
	if i := strings.IndexByte(s[pos:], Sentinel); i >= 0 {
		return pos + i
	}
	return len(s)
}

func clip(s string) string {
	if len(s) > 12 {
		return s[:12] + "..."
	}
	return s
}
