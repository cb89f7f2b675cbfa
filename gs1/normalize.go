/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import "strings"

// symbologyPrefixes maps the ISO/IEC 15424 symbology identifiers that GS1
// readers emit to the symbology name. Matching is exact and case-sensitive,
// at the very start of the input only.
var symbologyPrefixes = []struct {
	prefix, name string
}{
	{"]d2", "GS1 DataMatrix"},
	{"]C1", "GS1-128"},
	{"]e0", "GS1 DataBar"},
	{"]e1", "GS1 DataBar"},
	{"]e2", "GS1 DataBar"},
	{"]Q3", "GS1 QR"},
}

// normalized is the input after prefix stripping and separator
// canonicalization, ready for the tokenizer.
type normalized struct {
	text              string
	symbology         string
	separatorsPresent bool
}

// normalize strips an optional symbology identifier, trims surrounding
// ASCII whitespace, and replaces every configured separator glyph with the
// canonical sentinel byte. Scanners differ in how they surface the invisible
// FNC1 character; canonicalizing here means the tokenizer only ever sees one
// spelling.
func normalize(raw string, opts *DecodeOptions) normalized {
	var n normalized

	s := raw
	for _, sp := range symbologyPrefixes {
		if strings.HasPrefix(s, sp.prefix) {
			n.symbology = sp.name
			s = s[len(sp.prefix):]
			break
		}
	}

	s = strings.Trim(s, " \t\r\n")

	glyphs := opts.SeparatorGlyphs
	if glyphs == nil {
		glyphs = DefaultSeparatorGlyphs
	}
	for _, g := range glyphs {
		if g == "" {
			continue
		}
		if strings.Contains(s, g) {
			n.separatorsPresent = true
			if opts.NormalizeSeparators {
				s = strings.ReplaceAll(s, g, string(rune(Sentinel)))
			}
		}
	}

	n.text = s
	return n
}
