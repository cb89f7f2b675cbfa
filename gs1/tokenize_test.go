/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

const gs = "\x1d"

// pairs flattens a tokenization to AI=value strings for easy comparison.
func pairs(elements []Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.AI + "=" + e.RawValue
	}
	return out
}

func TestTokenize(t *testing.T) {
	type tokTest struct {
		name, in  string
		want      []string
		ambiguous bool
	}

	full := func(n, in string, want ...string) tokTest {
		return tokTest{name: n, in: in, want: want}
	}
	ambig := func(n, in string, want ...string) tokTest {
		return tokTest{name: n, in: in, want: want, ambiguous: true}
	}

	for i, tt := range []tokTest{
		full("single fixed", "0106286740000249",
			"01=06286740000249"),
		full("fixed chain", "010628674000024917280430",
			"01=06286740000249", "17=280430"),
		full("variable at end", "0106286740000249" + "10GB2C",
			"01=06286740000249", "10=GB2C"),
		full("variable with separator", "10GB2C"+gs+"21ABCDEF",
			"10=GB2C", "21=ABCDEF"),
		full("separator then fixed", "21SERIAL123"+gs+"17270301",
			"21=SERIAL123", "17=270301"),
		full("decimal series", "31020012343102006789",
			"3102=001234", "3102=006789"),
		full("variable value with no continuation ai", "10ZZZZ",
			"10=ZZZZ"),

		// a variable value followed by something that scans as another
		// AI cannot be bounded without a separator
		ambig("lot then serial unseparated", "10GB2C2171490437969853"),
		ambig("serial absorbs or splits", "2164SSI54CE688QZ1727021410C601"),
		ambig("over-long run must split", "109999999999999999999999999999"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			opts := DefaultOptions()

			tok := tokenize(tt.in, &opts)
			w.As(tt.in).ShouldBeEqual(tok.ambiguous, tt.ambiguous)
			if !tt.ambiguous {
				w.As(tt.in).ShouldBeEqual(pairs(tok.elements), tt.want)
			}
		})
	}
}

func TestTokenize_extraSeparator(t *testing.T) {
	w := expect.WrapT(t)
	opts := DefaultOptions()

	// separator after a fixed-length value is redundant but tolerated
	tok := tokenize("0106286740000249"+gs+"10GB2C", &opts)
	w.ShouldBeFalse(tok.ambiguous)
	w.ShouldBeEqual(pairs(tok.elements), []string{"01=06286740000249", "10=GB2C"})
	w.StopOnMismatch().ShouldHaveLength(tok.warnings, 1)
	w.ShouldBeEqual(tok.warnings[0].Code, ExtraSeparator)
}

func TestTokenize_truncatedFixed(t *testing.T) {
	w := expect.WrapT(t)
	opts := DefaultOptions()

	tok := tokenize("010628674", &opts)
	w.ShouldBeFalse(tok.ambiguous)
	w.StopOnMismatch().ShouldHaveLength(tok.elements, 1)
	w.ShouldBeEqual(tok.elements[0].AI, "01")
	w.ShouldBeEqual(tok.elements[0].RawValue, "0628674")
	w.ShouldBeFalse(tok.elements[0].Valid)
	w.StopOnMismatch().ShouldHaveLength(tok.errors, 1)
	w.ShouldBeEqual(tok.errors[0].Code, TruncatedData)
}

func TestTokenize_unknownAI(t *testing.T) {
	w := expect.WrapT(t)
	opts := DefaultOptions()

	// 05 is unassigned; the scanner reports it and resumes at the next
	// separator
	tok := tokenize("05garbage"+gs+"10GB2C", &opts)
	w.ShouldBeFalse(tok.ambiguous)
	w.ShouldBeEqual(pairs(tok.elements), []string{"10=GB2C"})
	w.StopOnMismatch().ShouldHaveLength(tok.errors, 1)
	w.ShouldBeEqual(tok.errors[0].Code, UnknownAI)

	// with no separator the rest of the input is unrecoverable
	tok = tokenize("05garbage", &opts)
	w.ShouldHaveLength(tok.elements, 0)
	w.StopOnMismatch().ShouldHaveLength(tok.errors, 1)
	w.ShouldBeEqual(tok.errors[0].Code, UnknownAI)
}

func TestTokenize_ambiguityPosition(t *testing.T) {
	w := expect.WrapT(t)
	opts := DefaultOptions()

	in := "010628674000024917280430" + "10GB2C2171490437969853"
	tok := tokenize(in, &opts)
	w.ShouldBeTrue(tok.ambiguous)
	// the scan got through the fixed-length elements first
	w.ShouldBeEqual(pairs(tok.elements), []string{"01=06286740000249", "17=280430"})
	w.ShouldBeEqual(tok.ambiguousAt, 24)
}
