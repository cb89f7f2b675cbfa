/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/ai"
)

var (
	// cset82 is GS1 character set 82: the characters permitted in
	// alphanumeric AI values (GS1 General Specifications, figure 7.11-1).
	cset82 = [127]uint8{
		'!': 1, '"': 1, '%': 1, '&': 1, '\'': 1, '(': 1, ')': 1,
		'*': 1, '+': 1, ',': 1, '-': 1, '.': 1, '/': 1,
		':': 1, ';': 1, '<': 1, '=': 1, '>': 1, '?': 1, '_': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}

	// cset39 is GS1 character set 39, the restricted set some identifier
	// AIs use. No catalogued AI currently carries the restriction, but
	// the set is defined alongside cset82 for callers that need it.
	cset39 = [127]uint8{
		'#': 1, '-': 1, '/': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	}
)

// IsCSET82 reports whether every character of s belongs to GS1 character
// set 82.
func IsCSET82(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 127 || cset82[s[i]] == 0 {
			return false
		}
	}
	return true
}

// IsCSET39 reports whether every character of s belongs to GS1 character
// set 39.
func IsCSET39(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 127 || cset39[s[i]] == 0 {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// CheckDigit returns the GS1 mod-10 check digit for a string of digits:
// right to left, digits are weighted 3, 1, 3, 1, ...; the check digit is the
// mod-10 additive inverse of the weighted sum. The input must not include
// the check digit itself.
func CheckDigit(digits string) int {
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		weight = 4 - weight
	}
	return (10 - sum%10) % 10
}

// CheckDigitOK reports whether the final character of value is the correct
// mod-10 check digit over the preceding digits. It is false for values that
// are not pure digit strings of at least two characters.
func CheckDigitOK(value string) bool {
	if len(value) < 2 || !isDigits(value) {
		return false
	}
	return CheckDigit(value[:len(value)-1]) == int(value[len(value)-1]-'0')
}

// gsDate is the outcome of decoding one of the GS1 date layouts.
type gsDate struct {
	t              time.Time
	dayUnspecified bool
}

func daysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseDate decodes value according to the given layout. The century of a
// two-digit year is resolved by pivot: YY >= pivot is 19YY, otherwise 20YY.
// Day 00 is permitted only by the YYMMD0 layout, where it means the day is
// unspecified; the decoded date is then the last day of the month so that
// such dates still order sensibly.
func parseDate(value string, format ai.DateFormat, pivot int) (gsDate, error) {
	if len(value) != format.Length() || !isDigits(value) {
		return gsDate{}, errors.Errorf("%s date needs %d digits, have %q",
			format, format.Length(), value)
	}

	num := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	var year, month, day, hour int
	rest := value
	if format == ai.YYYYMMDD {
		year = num(rest[:4])
		rest = rest[4:]
	} else {
		yy := num(rest[:2])
		if yy >= pivot {
			year = 1900 + yy
		} else {
			year = 2000 + yy
		}
		rest = rest[2:]
	}
	month = num(rest[:2])
	day = num(rest[2:4])
	if format == ai.YYMMDDHH {
		hour = num(rest[4:6])
		if hour > 23 {
			return gsDate{}, errors.Errorf("hour %02d out of range", hour)
		}
	}

	if month < 1 || month > 12 {
		return gsDate{}, errors.Errorf("month %02d out of range", month)
	}

	d := gsDate{}
	switch {
	case day == 0 && format == ai.YYMMD0:
		d.dayUnspecified = true
		day = daysInMonth(year, month)
	case day < 1 || day > daysInMonth(year, month):
		return gsDate{}, errors.Errorf("day %02d out of range for %04d-%02d",
			day, year, month)
	}

	d.t = time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC)
	return d, nil
}

// formatDate renders a decoded date back into its GS1 layout. It is the
// inverse of parseDate for concrete days; a day-unspecified date renders
// with day "00".
func formatDate(d gsDate, format ai.DateFormat) string {
	day := d.t.Day()
	if d.dayUnspecified {
		day = 0
	}
	switch format {
	case ai.YYYYMMDD:
		return fmtN(d.t.Year(), 4) + fmtN(int(d.t.Month()), 2) + fmtN(day, 2)
	case ai.YYMMDDHH:
		return fmtN(d.t.Year()%100, 2) + fmtN(int(d.t.Month()), 2) +
			fmtN(day, 2) + fmtN(d.t.Hour(), 2)
	default:
		return fmtN(d.t.Year()%100, 2) + fmtN(int(d.t.Month()), 2) + fmtN(day, 2)
	}
}

func fmtN(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// buildElement runs every validator that applies to the value and returns
// the fully populated element. Validation failures accumulate on the
// element; they never stop the remaining validators, so an element reports
// everything wrong with it at once.
func buildElement(sp *ai.Spec, value string, start int, opts *DecodeOptions) Element {
	e := Element{
		AI:       sp.Code,
		Title:    sp.Title,
		RawValue: value,
		Value:    value,
		Start:    start,
		End:      start + len(sp.Code) + len(value),
		Valid:    true,
	}

	// character set
	digits := isDigits(value)
	switch sp.DataType {
	case ai.Numeric:
		if !digits {
			e.addError(diag(InvalidCharacters, "AI %s value must be numeric", sp.Code))
		}
	case ai.Alphanumeric:
		if !IsCSET82(value) {
			e.addError(diag(InvalidCharacters, "AI %s value has characters outside CSET 82", sp.Code))
		}
	}

	// length
	if sp.IsFixed() {
		if len(value) != sp.MinLength {
			e.addError(diag(InvalidLength, "AI %s value must have exactly %d characters, has %d",
				sp.Code, sp.MinLength, len(value)))
		}
	} else if len(value) < sp.MinLength || len(value) > sp.MaxLength {
		e.addError(diag(InvalidLength, "AI %s value must have %d to %d characters, has %d",
			sp.Code, sp.MinLength, sp.MaxLength, len(value)))
	}

	// check digit
	if sp.CheckDigit && digits && len(value) == sp.MaxLength {
		if !CheckDigitOK(value) {
			e.addError(diag(InvalidCheckDigit, "AI %s value %s fails mod-10", sp.Code, value))
		}
	}

	// date
	if sp.IsDate() {
		if d, err := parseDate(value, sp.DateFormat, opts.CenturyPivot); err != nil {
			e.addError(diag(InvalidDate, "AI %s: %v", sp.Code, err))
		} else {
			e.Date = d.t
			e.DayUnspecified = d.dayUnspecified
			e.HasDate = true
			e.Value = d.t.Format("2006-01-02")
			if sp.DateFormat == ai.YYMMDDHH {
				e.Value = d.t.Format("2006-01-02 15:00")
			}
		}
	}

	// implied decimal
	if sp.IsDecimal() && digits && len(value) <= 18 {
		n, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			e.Decimal = float64(n) / pow10(sp.DecimalPosition)
			e.DecimalText = strconv.FormatFloat(e.Decimal, 'f', sp.DecimalPosition, 64)
			e.HasDecimal = true
			e.Value = e.DecimalText
		}
	}

	// plain numeric values also carry their integer interpretation
	if digits && !sp.IsDate() && !sp.IsDecimal() && !sp.CheckDigit && len(value) <= 18 {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			e.Integer = n
			e.HasInteger = true
		}
	}

	return e
}

func pow10(n int) float64 {
	p := 1.0
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
