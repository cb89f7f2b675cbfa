/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestLookup_longestMatch(t *testing.T) {
	type lookupTest struct {
		name, input string
		pos         int
		code        string // "" means no match expected
	}

	match := func(n, in string, pos int, code string) lookupTest {
		return lookupTest{name: n, input: in, pos: pos, code: code}
	}
	none := func(n, in string, pos int) lookupTest {
		return lookupTest{name: n, input: in, pos: pos}
	}

	for i, tt := range []lookupTest{
		match("two digit", "0106286740000249", 0, "01"),
		match("interior offset", "xx1728043010GB", 2, "17"),
		match("37 absorbs no third digit", "371234", 0, "37"),
		match("four digit beats two", "31020012344", 0, "3102"),
		match("three digit", "2411234", 0, "241"),
		match("internal", "99whatever", 0, "99"),
		match("gs one series", "8018123456789012345678", 0, "8018"),

		none("letters", "GB2C21", 0),
		none("unassigned pair", "05123456", 0),
		none("bare prefix digit", "2", 0),
		none("past end", "01", 2),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)

			s := Lookup(tt.input, tt.pos)
			if tt.code == "" {
				w.As(tt.input).ShouldBeTrue(s == nil)
				return
			}
			w.As(tt.input).ShouldBeTrue(s != nil)
			w.StopOnMismatch().ShouldBeEqual(s.Code, tt.code)
		})
	}
}

func TestPrefixes_shortestFirst(t *testing.T) {
	w := expect.WrapT(t)

	// 3102 is catalogued; 31 alone is not, so only the deep match shows.
	specs := Prefixes("3102001234", 0)
	w.ShouldHaveLength(specs, 1)
	w.ShouldBeEqual(specs[0].Code, "3102")

	// 91 has no longer sibling at this offset
	specs = Prefixes("91abc", 0)
	w.ShouldHaveLength(specs, 1)
	w.ShouldBeEqual(specs[0].Code, "91")

	// no match at all
	w.ShouldHaveLength(Prefixes("abc", 0), 0)
}

func TestCodeStart(t *testing.T) {
	w := expect.WrapT(t)

	for _, c := range []byte{'0', '1', '2', '3', '4', '7', '8', '9'} {
		w.As(string(c)).ShouldBeTrue(CodeStart(c))
	}
	// no catalogued AI begins with 5 or 6, and letters never start one
	for _, c := range []byte{'5', '6', 'A', 'G', '~', 0x1D} {
		w.As(string(c)).ShouldBeFalse(CodeStart(c))
	}
}

func TestLookup_everyCatalogueCode(t *testing.T) {
	w := expect.WrapT(t)

	// round-trip: the trie must resolve each catalogued code to itself
	// when the code is followed by value-like digits
	for _, s := range All() {
		got := Lookup(s.Code+"000000", 0)
		w.As(s.Code).ShouldBeTrue(got != nil)
		// a longer code may shadow a shorter one here only if the longer
		// code is itself catalogued, which still satisfies longest-match
		if got.Code != s.Code {
			w.As(s.Code).ShouldBeTrue(len(got.Code) > len(s.Code))
		}
	}
}
