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

func TestParseLine(t *testing.T) {
	type lineTest struct {
		name, line string
		want       Spec
		bad        bool
	}

	pass := func(n, l string, want Spec) lineTest {
		return lineTest{name: n, line: l, want: want}
	}
	fail := func(n, l string) lineTest {
		return lineTest{name: n, line: l, bad: true}
	}

	for i, tt := range []lineTest{
		pass("fixed numeric csum", "01 * N14,csum ex=02 # GTIN", Spec{
			Code: "01", Title: "GTIN", FixedLength: true,
			MinLength: 14, MaxLength: 14, DataType: Numeric,
			CheckDigit: true, DecimalPosition: -1,
			ExclusiveWith: []string{"02"}, Class: Core,
		}),
		pass("variable text", "10 X..20 req=01,02 # BATCH/LOT", Spec{
			Code: "10", Title: "BATCH/LOT",
			MinLength: 1, MaxLength: 20, DataType: Alphanumeric,
			DecimalPosition: -1,
			RequiredWith:    []string{"01", "02"}, Class: Core,
		}),
		pass("date", "17 * N6,yymmd0 # USE BY", Spec{
			Code: "17", Title: "USE BY", FixedLength: true,
			MinLength: 6, MaxLength: 6, DataType: Numeric,
			DateFormat: YYMMD0, DecimalPosition: -1, Class: Core,
		}),
		pass("bounded range", "421 X4..12 # SHIP TO POST (ISO)", Spec{
			Code: "421", Title: "SHIP TO POST (ISO)",
			MinLength: 4, MaxLength: 12, DataType: Alphanumeric,
			DecimalPosition: -1, Class: General,
		}),
		pass("internal", "91 X..90 # COMPANY INTERNAL 1", Spec{
			Code: "91", Title: "COMPANY INTERNAL 1",
			MinLength: 1, MaxLength: 90, DataType: Alphanumeric,
			DecimalPosition: -1, Class: Internal,
		}),

		fail("no title", "01 * N14,csum"),
		fail("no syntax", "01 # GTIN"),
		fail("bad type", "01 Q14 # GTIN"),
		fail("bad linter", "01 N14,cdigit # GTIN"),
		fail("bad range", "01 N14..2 # GTIN"),
		fail("zero length", "01 N0 # GTIN"),
		fail("stray field", "01 N14 extra # GTIN"),
		fail("date length mismatch", "17 N4,yymmdd # USE BY"),
		fail("fixed with range", "17 * N4..6 # USE BY"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)

			specs, err := parseLine(tt.line)
			if tt.bad {
				w.As(tt.line).ShouldFail(err)
				return
			}
			w.As(tt.line).ShouldSucceed(err)
			w.ShouldHaveLength(specs, 1)
			w.ShouldBeEqual(*specs[0], tt.want)
		})
	}
}

func TestParseLine_series(t *testing.T) {
	w := expect.WrapT(t)

	specs, err := parseLine("310n * N6,dec req=01 # NET WEIGHT (kg)")
	w.ShouldSucceed(err)
	w.ShouldHaveLength(specs, 10)
	for n, s := range specs {
		w.As(s.Code).ShouldBeEqual(s.Code, fmt.Sprintf("310%d", n))
		w.As(s.Code).ShouldBeEqual(s.DecimalPosition, n)
		w.As(s.Code).ShouldBeEqual(s.MinLength, 6)
		w.As(s.Code).ShouldBeTrue(s.FixedLength)
	}

	// series without the dec linter expand but carry no exponent
	specs, err = parseLine("703n X4..30 # PROCESSOR")
	w.ShouldSucceed(err)
	w.ShouldHaveLength(specs, 10)
	for _, s := range specs {
		w.As(s.Code).ShouldBeEqual(s.DecimalPosition, -1)
	}
}

func TestBuild_catalogueInvariants(t *testing.T) {
	w := expect.WrapT(t)

	specs := All()
	w.ShouldBeTrue(len(specs) > 150)

	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		w.As(s.Code).ShouldBeFalse(seen[s.Code])
		seen[s.Code] = true

		if s.FixedLength {
			w.As(s.Code).ShouldBeEqual(s.MinLength, s.MaxLength)
		}
		w.As(s.Code).ShouldBeTrue(s.MinLength >= 1)
		w.As(s.Code).ShouldBeTrue(s.MaxLength >= s.MinLength)
		w.As(s.Code).ShouldBeTrue(len(s.Code) >= 2 && len(s.Code) <= 4)
		if s.Class == Internal {
			w.As(s.Code).ShouldBeTrue(s.Code >= "90" && s.Code <= "99")
		}
	}

	// every decimal series is complete and carries its exponent
	for n := 0; n <= 9; n++ {
		code := fmt.Sprintf("310%d", n)
		s, ok := Get(code)
		w.As(code).ShouldBeTrue(ok)
		w.As(code).ShouldBeEqual(s.DecimalPosition, n)
	}
}

func TestBuild_rejectsDuplicates(t *testing.T) {
	w := expect.WrapT(t)
	_, err := build("01 * N14,csum # GTIN\n01 * N14 # GTIN AGAIN\n")
	w.ShouldFail(err)
}
