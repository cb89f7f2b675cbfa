/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"fmt"
	"time"
)

// Code tags a diagnostic with its kind. The set is closed; consumers switch
// on these rather than on message text.
type Code string

const (
	MissingSeparator  Code = "MissingSeparator"
	AmbiguousParse    Code = "AmbiguousParse"
	UnknownAI         Code = "UnknownAI"
	InvalidLength     Code = "InvalidLength"
	InvalidFormat     Code = "InvalidFormat"
	InvalidCheckDigit Code = "InvalidCheckDigit"
	InvalidDate       Code = "InvalidDate"
	ExtraSeparator    Code = "ExtraSeparator"
	InvalidCharacters Code = "InvalidCharacters"
	TruncatedData     Code = "TruncatedData"
	CheckDigitFailure Code = "CheckDigitFailure"
)

// Diagnostic is one tagged error or warning, either about a single element
// or about the input as a whole.
type Diagnostic struct {
	Code   Code   `json:"code"`
	Detail string `json:"detail,omitempty"`
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return string(d.Code)
	}
	return fmt.Sprintf("%s: %s", d.Code, d.Detail)
}

func diag(code Code, format string, args ...interface{}) Diagnostic {
	if format == "" {
		return Diagnostic{Code: code}
	}
	return Diagnostic{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// Element is one recognized AI occurrence: the code, the raw value consumed
// for it, the typed interpretation of that value where the AI defines one,
// and the outcome of every validator that applies.
type Element struct {
	// AI is the matched code, e.g. "01" or "3102".
	AI string `json:"ai"`
	// Title is the dictionary's data title for the AI.
	Title string `json:"title"`
	// RawValue is the substring consumed as the value.
	RawValue string `json:"raw_value"`
	// Value is the canonical rendering of the typed value: an ISO date
	// for date AIs, a decimal string for weight/measure AIs, and the raw
	// value for everything else.
	Value string `json:"value"`

	// Start and End are [start, end) offsets of the AI code plus value
	// within the normalized input.
	Start int `json:"start"`
	End   int `json:"end"`

	// Valid is the conjunction of every applicable validator.
	Valid bool `json:"valid"`
	// Errors lists each validation failure in the order detected.
	Errors []Diagnostic `json:"errors,omitempty"`

	// Date holds the decoded date for date-format AIs. For a YYMMD0
	// value with day 00, Date is the last day of the month (so dates
	// still order correctly) and DayUnspecified is set.
	Date           time.Time `json:"date,omitempty"`
	DayUnspecified bool      `json:"day_unspecified,omitempty"`
	HasDate        bool      `json:"-"`

	// Decimal holds the scaled value for implied-decimal AIs, with
	// DecimalText its fixed-precision rendering.
	Decimal     float64 `json:"decimal,omitempty"`
	DecimalText string  `json:"decimal_text,omitempty"`
	HasDecimal  bool    `json:"-"`

	// Integer holds the integer interpretation of plain numeric values
	// that fit in 64 bits.
	Integer    int64 `json:"integer,omitempty"`
	HasInteger bool  `json:"-"`
}

// addError records a validation failure and clears Valid.
func (e *Element) addError(d Diagnostic) {
	e.Valid = false
	e.Errors = append(e.Errors, d)
}

// Alternative is one complete parse the reconstructor considered, with the
// score it earned.
type Alternative struct {
	Elements []Element `json:"elements"`
	Score    float64   `json:"score"`
}

// DecodeResult is the outcome of decoding one element string.
//
// A DecodeResult owns its strings and elements outright; it keeps no
// references into the caller's buffer, so the caller may reuse or free the
// input immediately. The AI dictionary consulted during the decode is shared
// immutable state and is not part of the result.
type DecodeResult struct {
	// Raw is the input exactly as given; Normalized is the input after
	// symbology prefix stripping and separator canonicalization, and is
	// what element spans index into.
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`

	// Symbology names the symbology identifier stripped from the input,
	// e.g. "GS1 DataMatrix", or is empty if none was present.
	Symbology string `json:"symbology,omitempty"`

	// SeparatorsPresent reports whether any separator glyph was observed
	// before normalization.
	SeparatorsPresent bool `json:"separators_present"`

	// Elements lists the recognized AI occurrences in input order.
	Elements []Element `json:"elements"`

	Errors   []Diagnostic `json:"errors,omitempty"`
	Warnings []Diagnostic `json:"warnings,omitempty"`

	// Confidence summarizes the selected parse in [0, 1]. An unambiguous
	// input decodes at 1; ambiguity resolved by a wide scoring margin
	// stays close to 1; a check-digit fallback caps it at 0.4; inputs
	// with no acceptable parse score 0.
	Confidence float64 `json:"confidence"`

	// Alternatives holds the ranked complete parses when reconstruction
	// ran and more than one survived, best first; Alternatives[0] then
	// mirrors Elements.
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// addError appends a top-level diagnostic, skipping exact duplicates so one
// underlying condition is reported once.
func (r *DecodeResult) addError(d Diagnostic) {
	for _, have := range r.Errors {
		if have == d {
			return
		}
	}
	r.Errors = append(r.Errors, d)
}

func (r *DecodeResult) addWarning(d Diagnostic) {
	for _, have := range r.Warnings {
		if have == d {
			return
		}
	}
	r.Warnings = append(r.Warnings, d)
}
