/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkResultShape asserts the invariants every decode must satisfy,
// whatever the input.
func checkResultShape(t *testing.T, r DecodeResult) {
	t.Helper()
	require.NotNil(t, r.Elements)
	require.GreaterOrEqual(t, r.Confidence, 0.0)
	require.LessOrEqual(t, r.Confidence, 1.0)
	for i := 1; i < len(r.Alternatives); i++ {
		require.Less(t, r.Alternatives[i].Score, r.Alternatives[i-1].Score,
			"alternative scores must strictly decrease")
	}
	if len(r.Alternatives) > 0 {
		require.Equal(t, pairs(r.Elements), pairs(r.Alternatives[0].Elements),
			"the best alternative must mirror the selected elements")
	}
}

func TestDecode_pharmaScenarios(t *testing.T) {
	type scenario struct {
		name, in      string
		want          []string
		minConfidence float64
		dayUnspec     string // AI whose element must carry the flag
	}

	for _, tt := range []scenario{
		{
			name: "canonical order",
			in:   "01062867400002491728043010GB2C2171490437969853",
			want: []string{
				"01=06286740000249", "17=280430", "10=GB2C", "21=71490437969853",
			},
			minConfidence: 0.8,
		},
		{
			name: "short lot",
			in:   "01062850960028771726033110HN8X2172869453519267",
			want: []string{
				"01=06285096002877", "17=260331", "10=HN8X", "21=72869453519267",
			},
		},
		{
			name: "serial before expiry",
			in:   "01062911037315552164SSI54CE688QZ1727021410C601",
			want: []string{
				"01=06291103731555", "21=64SSI54CE688QZ", "17=270214", "10=C601",
			},
		},
		{
			name: "trailing digits absorbed into serial",
			in:   "010622300001036517270903103056442130564439945626",
			want: []string{
				"01=06223000010365", "17=270903", "10=305644", "21=30564439945626",
			},
		},
		{
			name: "legacy day zero expiry",
			in:   "010625115902606717290400104562202106902409792902",
			want: []string{
				"01=06251159026067", "17=290400", "10=456220", "21=06902409792902",
			},
			dayUnspec: "17",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := Decode(tt.in, DefaultOptions())

			checkResultShape(t, r)
			require.Equal(t, tt.want, pairs(r.Elements))
			require.Equal(t, tt.in, r.Normalized)
			require.False(t, r.SeparatorsPresent)

			if tt.minConfidence > 0 {
				require.GreaterOrEqual(t, r.Confidence, tt.minConfidence)
			}
			if tt.dayUnspec != "" {
				found := false
				for _, e := range r.Elements {
					if e.AI == tt.dayUnspec {
						require.True(t, e.DayUnspecified)
						found = true
					}
				}
				require.True(t, found)
				require.LessOrEqual(t, r.Confidence, 0.9)
			}

			// separator-stripped input goes through reconstruction
			require.NotEmpty(t, r.Warnings)
			require.Equal(t, MissingSeparator, r.Warnings[0].Code)
		})
	}
}

func TestDecode_symbologyPrefixAndSeparators(t *testing.T) {
	in := "]d2010611800002210721SERIAL123<GS>17270301"
	r := Decode(in, DefaultOptions())

	checkResultShape(t, r)
	require.Equal(t, "GS1 DataMatrix", r.Symbology)
	require.True(t, r.SeparatorsPresent)
	require.Equal(t, "010611800002210721SERIAL123\x1d17270301", r.Normalized)
	require.Equal(t, []string{
		"01=06118000022107", "21=SERIAL123", "17=270301",
	}, pairs(r.Elements))
	require.Equal(t, 1.0, r.Confidence)
	require.Empty(t, r.Alternatives)

	// the GTIN element's validity must agree with the mod-10 algorithm
	// (this GTIN passes; the corrupted variant below covers an invalid
	// element that is still emitted)
	require.Equal(t, CheckDigitOK(r.Elements[0].RawValue), r.Elements[0].Valid)
}

func TestDecode_invalidElementStillEmitted(t *testing.T) {
	// same shape as the scenario above but with a corrupted check digit
	in := "]d2010611800002210821SERIAL123<GS>17270301"
	r := Decode(in, DefaultOptions())

	checkResultShape(t, r)
	require.Equal(t, []string{
		"01=06118000022108", "21=SERIAL123", "17=270301",
	}, pairs(r.Elements))
	require.False(t, r.Elements[0].Valid)
	require.Equal(t, InvalidCheckDigit, r.Elements[0].Errors[0].Code)
	require.True(t, r.Elements[1].Valid)
	require.True(t, r.Elements[2].Valid)
}

func TestDecode_emptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "]d2"} {
		r := Decode(in, DefaultOptions())
		checkResultShape(t, r)
		require.Empty(t, r.Elements)
		require.Equal(t, 0.0, r.Confidence)
		require.Len(t, r.Errors, 1)
		require.Equal(t, InvalidFormat, r.Errors[0].Code)
	}
}

func TestDecode_strictMode(t *testing.T) {
	opts := DefaultOptions()
	opts.StrictMode = true

	// bad check digit: element-level failure becomes fatal
	r := Decode("0106118000022108"+gs+"10AB12", opts)
	require.False(t, r.Elements[0].Valid)
	require.Equal(t, 0.0, r.Confidence)

	found := false
	for _, d := range r.Errors {
		if d.Code == InvalidFormat {
			found = true
		}
	}
	require.True(t, found, "strict mode must add a fatal top-level error")

	// the same input is non-fatal outside strict mode
	r = Decode("0106118000022108"+gs+"10AB12", DefaultOptions())
	require.Equal(t, 1.0, r.Confidence)
}

func TestDecode_ambiguityDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowAmbiguous = false

	r := Decode("01062867400002491728043010GB2C2171490437969853", opts)
	checkResultShape(t, r)

	// partial fast-path result: the fixed-length elements scanned before
	// the ambiguity
	require.Equal(t, []string{"01=06286740000249", "17=280430"}, pairs(r.Elements))

	found := false
	for _, d := range r.Errors {
		if d.Code == AmbiguousParse {
			found = true
		}
	}
	require.True(t, found)
}

func TestDecode_deterministic(t *testing.T) {
	inputs := []string{
		"01062867400002491728043010GB2C2171490437969853",
		"010622300001036517270903103056442130564439945626",
		"]d2010611800002210721SERIAL123<GS>17270301",
		"10GB2C" + gs + "2171490437969853",
	}
	for _, in := range inputs {
		a := Decode(in, DefaultOptions())
		b := Decode(in, DefaultOptions())
		require.Equal(t, a, b, "decode must be deterministic for %q", in)
	}
}

func TestDecode_pairingWarnings(t *testing.T) {
	// a lone lot number is conventionally paired with a GTIN
	r := Decode("10GB2C", DefaultOptions())
	require.Len(t, r.Elements, 1)

	found := false
	for _, d := range r.Warnings {
		if d.Code == InvalidFormat {
			found = true
		}
	}
	require.True(t, found)

	// the pairing is satisfied in the full scenario strings
	r = Decode("0106286740000249"+gs+"10GB2C", DefaultOptions())
	for _, d := range r.Warnings {
		require.NotEqual(t, InvalidFormat, d.Code)
	}
}

func TestDecode_unknownAILeadingRegion(t *testing.T) {
	r := Decode("05oops"+gs+"0106286740000249", DefaultOptions())
	checkResultShape(t, r)
	require.Equal(t, []string{"01=06286740000249"}, pairs(r.Elements))
	require.Equal(t, UnknownAI, r.Errors[0].Code)
}
