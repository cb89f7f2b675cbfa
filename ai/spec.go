/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

// DataType identifies the character set an AI's value is drawn from.
type DataType int

const (
	// Numeric values contain only the digits '0'-'9'.
	Numeric DataType = iota
	// Alphanumeric values are drawn from GS1 character set 82.
	Alphanumeric
)

func (d DataType) String() string {
	if d == Numeric {
		return "N"
	}
	return "X"
}

// DateFormat identifies which GS1 date layout an AI's value uses, if any.
type DateFormat int

const (
	NoDate DateFormat = iota
	// YYMMDD is a six digit date; the century is resolved by pivot.
	YYMMDD
	// YYMMD0 is YYMMDD, except that day "00" is permitted and means the
	// day is unspecified (month-level granularity).
	YYMMD0
	// YYYYMMDD is an eight digit date with an explicit year.
	YYYYMMDD
	// YYMMDDHH is YYMMDD followed by an hour 00-23.
	YYMMDDHH
)

// Length returns the number of characters a value of this format occupies.
func (f DateFormat) Length() int {
	switch f {
	case YYMMDD, YYMMD0:
		return 6
	case YYYYMMDD, YYMMDDHH:
		return 8
	}
	return 0
}

func (f DateFormat) String() string {
	switch f {
	case YYMMDD:
		return "yymmdd"
	case YYMMD0:
		return "yymmd0"
	case YYYYMMDD:
		return "yyyymmdd"
	case YYMMDDHH:
		return "yymmddhh"
	}
	return ""
}

// PriorityClass groups AIs by how strongly their presence anchors a parse.
// The reconstructor's scoring consults only the Internal class (the
// absorption penalty and the fewer-internal-AIs tiebreak); Core and General
// AIs are scored alike.
type PriorityClass int

const (
	General PriorityClass = iota
	Core
	Internal
)

func (c PriorityClass) String() string {
	switch c {
	case Core:
		return "core"
	case Internal:
		return "internal"
	}
	return "general"
}

// Spec describes a single Application Identifier: the code that introduces
// it, the shape of its value, and the validations its value must satisfy.
//
// Specs are built once from the catalogue at package init and are never
// mutated afterwards, so they may be shared freely across goroutines.
type Spec struct {
	// Code is the 2-4 digit AI code.
	Code string
	// Title is the GS1 data title, e.g. "GTIN" or "BATCH/LOT".
	Title string

	// FixedLength marks membership in the predefined-length table: the
	// value's length is known from the code alone and no separator is
	// required after it. Note that some AIs outside this table still have
	// a single legal length (MinLength == MaxLength) but require a
	// separator all the same; IsFixed reports on the length, FixedLength
	// on the separator rule.
	FixedLength bool

	MinLength, MaxLength int

	DataType DataType

	// CheckDigit marks values whose final character is a mod-10 check
	// digit over the preceding digits.
	CheckDigit bool

	DateFormat DateFormat

	// DecimalPosition is the implied decimal exponent for weight and
	// measure AIs (the 4th digit of e.g. 310n), or -1 when the value is
	// not a decimal.
	DecimalPosition int

	// RequiredWith and ExclusiveWith are advisory cross-AI constraints;
	// violating them produces warnings, never rejections.
	RequiredWith  []string
	ExclusiveWith []string

	Class PriorityClass
}

// IsFixed reports whether the value has exactly one legal length.
func (s *Spec) IsFixed() bool {
	return s.MinLength == s.MaxLength
}

// IsDate reports whether the value carries one of the GS1 date layouts.
func (s *Spec) IsDate() bool {
	return s.DateFormat != NoDate
}

// IsDecimal reports whether the value carries an implied decimal point.
func (s *Spec) IsDecimal() bool {
	return s.DecimalPosition >= 0
}
