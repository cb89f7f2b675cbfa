/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

// Sentinel is the canonical group separator byte every configured separator
// glyph is normalized to.
const Sentinel byte = 0x1D

// DefaultSeparatorGlyphs are the separator spellings recognized out of the
// box: the real GS byte, the printable "<GS>" stand-in, and the single-glyph
// substitutes various scanner configurations emit.
var DefaultSeparatorGlyphs = []string{string(rune(Sentinel)), "<GS>", "~", "|", "^"}

// DecodeOptions control a single call to Decode. The zero value is NOT a
// usable configuration; start from DefaultOptions and adjust.
type DecodeOptions struct {
	// AllowAmbiguous enables the beam-search reconstructor. When false,
	// a structurally ambiguous input returns the partial fast-path
	// result with an AmbiguousParse error instead.
	AllowAmbiguous bool

	// MaxAlternatives bounds the Alternatives list on the result.
	MaxAlternatives int

	// StrictMode adds a fatal top-level error and zeroes the confidence
	// whenever any element fails validation.
	StrictMode bool

	// NormalizeSeparators replaces every configured separator glyph with
	// the canonical sentinel before scanning.
	NormalizeSeparators bool

	// CenturyPivot resolves two-digit years: YY >= pivot reads as 19YY,
	// anything lower as 20YY.
	CenturyPivot int

	// SeparatorGlyphs is the set of spellings treated as separators.
	SeparatorGlyphs []string

	// BeamWidth and MaxDepth bound the reconstructor's search.
	BeamWidth int
	MaxDepth  int

	// VendorInternalAIWhitelist lists internal AIs (90-99) the caller
	// genuinely uses; the reconstructor's absorption penalty is not
	// applied to them.
	VendorInternalAIWhitelist []string

	// Weights overrides the scoring weights; nil uses DefaultWeights.
	Weights *Weights
}

// DefaultOptions returns the configuration for typical pharmaceutical
// scanning input.
func DefaultOptions() DecodeOptions {
	return DecodeOptions{
		AllowAmbiguous:      true,
		MaxAlternatives:     5,
		StrictMode:          false,
		NormalizeSeparators: true,
		CenturyPivot:        51,
		SeparatorGlyphs:     DefaultSeparatorGlyphs,
		BeamWidth:           200,
		MaxDepth:            50,
	}
}

func (o *DecodeOptions) weights() *Weights {
	if o.Weights != nil {
		return o.Weights
	}
	return &defaultWeights
}

func (o *DecodeOptions) internalWhitelisted(code string) bool {
	for _, c := range o.VendorInternalAIWhitelist {
		if c == code {
			return true
		}
	}
	return false
}
