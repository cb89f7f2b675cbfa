/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// dictionary is the compiled form of the catalogue: the trie for prefix
// matching plus a code-keyed index. It is built exactly once, at package
// init, and never mutated, so all lookups are safe without synchronization.
type dictionary struct {
	trie  trie
	byCod map[string]*Spec
	specs []*Spec
}

var dict = mustBuild(catalogue)

func mustBuild(table string) *dictionary {
	d, err := build(table)
	if err != nil {
		// The catalogue is compiled into the binary; a bad line is a
		// programming error, not an input error.
		panic(err)
	}
	return d
}

func build(table string) (*dictionary, error) {
	d := &dictionary{byCod: make(map[string]*Spec)}
	for lineNo, line := range strings.Split(table, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		specs, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "catalogue line %d", lineNo+1)
		}
		for _, s := range specs {
			if err := d.trie.insert(s); err != nil {
				return nil, errors.Wrapf(err, "catalogue line %d", lineNo+1)
			}
			d.byCod[s.Code] = s
			d.specs = append(d.specs, s)
		}
	}
	sort.Slice(d.specs, func(i, j int) bool { return d.specs[i].Code < d.specs[j].Code })
	return d, nil
}

// parseLine parses one catalogue line into its Spec, or ten Specs for an
// 'n'-suffixed code.
func parseLine(line string) ([]*Spec, error) {
	body, title := line, ""
	if i := strings.IndexByte(line, '#'); i >= 0 {
		body, title = line[:i], strings.TrimSpace(line[i+1:])
	}
	if title == "" {
		return nil, errors.New("missing title")
	}

	fields := strings.Fields(body)
	if len(fields) < 2 {
		return nil, errors.New("expected at least a code and a syntax")
	}

	code := fields[0]
	fields = fields[1:]

	s := Spec{Title: title, DecimalPosition: -1}
	if fields[0] == "*" {
		s.FixedLength = true
		fields = fields[1:]
		if len(fields) == 0 {
			return nil, errors.New("missing syntax")
		}
	}

	decimal, err := parseSyntax(fields[0], &s)
	if err != nil {
		return nil, err
	}

	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "req="):
			s.RequiredWith = strings.Split(f[len("req="):], ",")
		case strings.HasPrefix(f, "ex="):
			s.ExclusiveWith = strings.Split(f[len("ex="):], ",")
		default:
			return nil, errors.Errorf("unrecognized field %q", f)
		}
	}

	if s.FixedLength && s.MinLength != s.MaxLength {
		return nil, errors.Errorf("predefined-length AI %s has a length range", code)
	}

	base := strings.TrimSuffix(code, "n")
	expand := base != code
	if !expand {
		s.Code = code
		s.Class = classOf(code)
		return []*Spec{&s}, nil
	}

	// 'n' series: one concrete code per final digit. Only the series with
	// the dec linter carry the digit as a decimal exponent.
	specs := make([]*Spec, 10)
	for n := 0; n <= 9; n++ {
		c := s // copy
		c.Code = base + strconv.Itoa(n)
		c.Class = classOf(c.Code)
		if decimal {
			c.DecimalPosition = n
		}
		specs[n] = &c
	}
	return specs, nil
}

// parseSyntax fills the type, lengths and linters from a token such as
// "N14,csum", "X..20", or "N6,yymmd0". It reports whether the dec linter
// was present; the caller decides which digit that binds to.
func parseSyntax(token string, s *Spec) (decimal bool, err error) {
	parts := strings.Split(token, ",")
	base := parts[0]
	if base == "" {
		return false, errors.New("empty syntax")
	}

	switch base[0] {
	case 'N':
		s.DataType = Numeric
	case 'X':
		s.DataType = Alphanumeric
	default:
		return false, errors.Errorf("unknown value type %q", base[:1])
	}

	lens := base[1:]
	switch {
	case lens == "":
		return false, errors.New("missing length")
	case strings.HasPrefix(lens, ".."):
		s.MinLength = 1
		s.MaxLength, err = strconv.Atoi(lens[2:])
	case strings.Contains(lens, ".."):
		lo := lens[:strings.Index(lens, "..")]
		hi := lens[strings.Index(lens, "..")+2:]
		s.MinLength, err = strconv.Atoi(lo)
		if err == nil {
			s.MaxLength, err = strconv.Atoi(hi)
		}
	default:
		s.MinLength, err = strconv.Atoi(lens)
		s.MaxLength = s.MinLength
	}
	if err != nil {
		return false, errors.Wrapf(err, "bad length in %q", token)
	}
	if s.MinLength < 1 || s.MaxLength < s.MinLength {
		return false, errors.Errorf("bad length range in %q", token)
	}

	for _, linter := range parts[1:] {
		switch linter {
		case "csum":
			s.CheckDigit = true
		case "dec":
			decimal = true
		case "yymmdd":
			s.DateFormat = YYMMDD
		case "yymmd0":
			s.DateFormat = YYMMD0
		case "yyyymmdd":
			s.DateFormat = YYYYMMDD
		case "yymmddhh":
			s.DateFormat = YYMMDDHH
		default:
			return false, errors.Errorf("unknown linter %q", linter)
		}
	}

	if s.DateFormat != NoDate && s.MinLength == s.MaxLength &&
		s.MinLength != s.DateFormat.Length() {
		return false, errors.Errorf("date linter does not fit length in %q", token)
	}
	return decimal, nil
}

func classOf(code string) PriorityClass {
	if len(code) == 2 && code[0] == '9' {
		return Internal
	}
	if coreAIs[code] {
		return Core
	}
	return General
}

// Lookup returns the Spec for the longest AI code that is a prefix of s
// beginning at pos, or nil if no catalogued code starts there. The walk
// visits at most four nodes, independent of dictionary size.
func Lookup(s string, pos int) *Spec {
	return dict.trie.longest(s, pos)
}

// Prefixes returns every Spec whose code is a prefix of s at pos, shortest
// first; callers that only want the longest match should use Lookup.
func Prefixes(s string, pos int) []*Spec {
	return dict.trie.all(s, pos)
}

// CodeStart reports whether c is the first character of at least one
// catalogued AI code.
func CodeStart(c byte) bool {
	return dict.trie.codeStart(c)
}

// Get returns the Spec for an exact AI code.
func Get(code string) (*Spec, bool) {
	s, ok := dict.byCod[code]
	return s, ok
}

// All returns every Spec in the dictionary, ordered by code. The returned
// slice is shared; callers must not modify it.
func All() []*Spec {
	return dict.specs
}
