/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"math"
	"sort"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1decode/ai"
)

// dateBonusAIs are the expiry-family AIs whose calendar-valid values are
// strong evidence of a correct boundary.
var dateBonusAIs = map[string]bool{"11": true, "13": true, "15": true, "17": true}

// beamState is one partial parse: everything decided up to pos, and the
// score earned so far. States are immutable once created; expansion copies.
type beamState struct {
	pos      int
	elements []Element
	score    float64

	lotCount    int
	serialCount int
	dayZero     bool
	cdFailed    bool
	prevVar     bool // last element was variable-length and just emitted
}

func (st *beamState) clone() beamState {
	c := *st
	c.elements = make([]Element, len(st.elements), len(st.elements)+1)
	copy(c.elements, st.elements)
	return c
}

// signature identifies a parse by its AI/value sequence, so the same parse
// reached along different paths is counted once.
func (st *beamState) signature() string {
	var b strings.Builder
	for i := range st.elements {
		b.WriteString(st.elements[i].AI)
		b.WriteByte('=')
		b.WriteString(st.elements[i].RawValue)
		b.WriteByte(';')
	}
	return b.String()
}

func (st *beamState) aiSequence() string {
	var b strings.Builder
	for i := range st.elements {
		b.WriteString(st.elements[i].AI)
		b.WriteByte(',')
	}
	return b.String()
}

// patterned reports whether the parse is exactly one of the two documented
// pharmaceutical orderings. Exactness matters: a parse that interleaves an
// extra element still observed the four core AIs in order, but it is not
// the canonical label and must not collect the same evidence.
func (st *beamState) patterned() bool {
	if len(st.elements) != 4 {
		return false
	}
	seq := st.aiSequence()
	return seq == "01,17,10,21," || seq == "01,21,17,10,"
}

func (st *beamState) internalCount() int {
	n := 0
	for i := range st.elements {
		if sp, ok := ai.Get(st.elements[i].AI); ok && sp.Class == ai.Internal {
			n++
		}
	}
	return n
}

func (st *beamState) lotValueLen() int {
	for i := range st.elements {
		if st.elements[i].AI == "10" {
			return len(st.elements[i].RawValue)
		}
	}
	return 0
}

func (st *beamState) hasAI(code string) bool {
	for i := range st.elements {
		if st.elements[i].AI == code {
			return true
		}
	}
	return false
}

// reconstruction is what the beam search hands back to Decode.
type reconstruction struct {
	elements     []Element
	alternatives []Alternative
	confidence   float64
	errors       []Diagnostic
	warnings     []Diagnostic
	complete     bool
	usedFallback bool
}

// reconstruct resumes from the tokenizer's last unambiguous state and
// searches for the best complete parse of the remainder. If no branch
// completes and at least one was pruned on a failing check digit (of any
// check-digit AI, not only 01), the search runs once more with that
// constraint demoted from pruning to flagging, so the caller still gets the
// most plausible parse -- clearly marked -- rather than nothing.
func reconstruct(s string, seed tokenization, opts *DecodeOptions) reconstruction {
	w := opts.weights()

	completed, cdPruned := beamSearch(s, seed.elements, seed.ambiguousAt, opts, w, false)

	var rec reconstruction
	if len(completed) == 0 && cdPruned {
		completed, _ = beamSearch(s, seed.elements, seed.ambiguousAt, opts, w, true)
		rec.usedFallback = true
	}
	if len(completed) == 0 {
		rec.errors = append(rec.errors, diag(InvalidFormat, "no consistent parse found"))
		rec.elements = seed.elements
		return rec
	}

	// path-level signals: the canonical pharma orderings
	for i := range completed {
		if completed[i].patterned() {
			completed[i].score += w.PatternBonus
		}
	}

	// Occam: the sparsest complete explanation gets a nudge.
	minElems := len(completed[0].elements)
	for i := range completed {
		if len(completed[i].elements) < minElems {
			minElems = len(completed[i].elements)
		}
	}
	for i := range completed {
		if len(completed[i].elements) == minElems {
			completed[i].score += w.OccamBonus
		}
	}

	completed = dedupe(completed)
	sort.SliceStable(completed, func(i, j int) bool {
		return betterParse(&completed[i], &completed[j], w)
	})

	best := completed[0]
	rec.complete = true
	rec.elements = best.elements

	if len(completed) > 1 {
		prev := math.Inf(1)
		for _, c := range completed {
			if len(rec.alternatives) == opts.MaxAlternatives {
				break
			}
			if c.score >= prev {
				continue
			}
			rec.alternatives = append(rec.alternatives,
				Alternative{Elements: c.elements, Score: c.score})
			prev = c.score
		}
	}

	switch {
	case len(completed) == 1:
		rec.confidence = 1.0
	default:
		rec.confidence = w.confidence(best.score, completed[1].score)
	}
	if best.dayZero && rec.confidence > 0.9 {
		rec.confidence = 0.9
	}
	if best.cdFailed {
		if rec.confidence > 0.4 {
			rec.confidence = 0.4
		}
		rec.errors = append(rec.errors,
			diag(CheckDigitFailure, "accepted a parse whose check digit fails"))
	}
	return rec
}

// beamSearch explores boundary hypotheses breadth-first, keeping the top
// beamWidth states by cumulative score at each depth. It reports the
// completed parses and whether any branch was pruned by a failing check
// digit (the signal for the fallback pass).
func beamSearch(s string, seedElems []Element, startPos int, opts *DecodeOptions,
	w *Weights, relaxCheckDigit bool) (completed []beamState, cdPruned bool) {

	frontier := []beamState{seedState(s, seedElems, startPos, opts, w)}

	for depth := 0; depth < opts.MaxDepth && len(frontier) > 0; depth++ {
		var next []beamState
		for i := range frontier {
			st := &frontier[i]
			if st.pos >= len(s) {
				completed = append(completed, *st)
				continue
			}
			expanded, pruned := expand(st, s, opts, w, relaxCheckDigit)
			cdPruned = cdPruned || pruned
			next = append(next, expanded...)
		}

		sort.SliceStable(next, func(i, j int) bool {
			if next[i].score != next[j].score {
				return next[i].score > next[j].score
			}
			// deterministic order among equals
			if next[i].pos != next[j].pos {
				return next[i].pos > next[j].pos
			}
			return next[i].aiSequence() < next[j].aiSequence()
		})
		if len(next) > opts.BeamWidth {
			next = next[:opts.BeamWidth]
		}
		frontier = next
	}

	// whatever reached the end on the final frontier still counts
	for i := range frontier {
		if frontier[i].pos >= len(s) {
			completed = append(completed, frontier[i])
		}
	}
	return completed, cdPruned
}

// seedState replays the tokenizer's elements through the scorer so seeded
// and searched elements contribute to the total on equal footing.
func seedState(s string, seedElems []Element, startPos int, opts *DecodeOptions, w *Weights) beamState {
	st := beamState{pos: startPos, elements: seedElems}
	for i := range seedElems {
		e := &seedElems[i]
		sp, ok := ai.Get(e.AI)
		if !ok {
			continue
		}
		st.score += elementScore(&st, sp, e, s, opts, w)
		noteElement(&st, sp, e)
	}
	return st
}

// expand generates every admissible continuation of one state.
func expand(st *beamState, s string, opts *DecodeOptions, w *Weights,
	relaxCheckDigit bool) (next []beamState, cdPruned bool) {

	if s[st.pos] == Sentinel {
		n := st.clone()
		if st.prevVar {
			n.score += w.SentinelUse
		}
		n.pos++
		n.prevVar = false
		return []beamState{n}, false
	}

	for _, sp := range ai.Prefixes(s, st.pos) {
		vstart := st.pos + len(sp.Code)
		for _, l := range candidateLengths(s, vstart, sp) {
			value := s[vstart : vstart+l]

			ok, cdMiss := admissible(sp, value, opts)
			if !ok {
				cdPruned = cdPruned || cdMiss
				if !cdMiss || !relaxCheckDigit {
					continue
				}
			}

			e := buildElement(sp, value, st.pos, opts)
			if cdMiss {
				e.addError(diag(CheckDigitFailure, "AI %s accepted despite mod-10 failure", sp.Code))
			}

			n := st.clone()
			n.score += elementScore(&n, sp, &e, s, opts, w)
			n.elements = append(n.elements, e)
			noteElement(&n, sp, &e)
			n.pos = vstart + l
			n.cdFailed = n.cdFailed || cdMiss
			next = append(next, n)
		}
	}
	return next, cdPruned
}

// candidateLengths enumerates the value lengths worth exploring for an AI
// at vstart. Fixed-length AIs admit exactly one; variable-length AIs admit
// any in-range length whose end lands on a sentinel, the end of input, or a
// character that begins some catalogued AI. That last condition is the
// pruning that keeps the branching factor small: a boundary that nothing
// recognizable follows cannot be a boundary.
func candidateLengths(s string, vstart int, sp *ai.Spec) []int {
	remain := len(s) - vstart
	if sp.FixedLength {
		if remain < sp.MinLength {
			return nil
		}
		return []int{sp.MinLength}
	}

	var lengths []int
	max := sp.MaxLength
	if max > remain {
		max = remain
	}
	for l := sp.MinLength; l <= max; l++ {
		end := vstart + l
		if end == len(s) || s[end] == Sentinel || ai.CodeStart(s[end]) {
			lengths = append(lengths, l)
		}
	}
	return lengths
}

// admissible applies the hard constraints: a candidate that cannot be a
// legal value for its AI is not worth scoring. cdMiss separates the one
// constraint the fallback pass may relax.
func admissible(sp *ai.Spec, value string, opts *DecodeOptions) (ok, cdMiss bool) {
	switch sp.DataType {
	case ai.Numeric:
		if !isDigits(value) {
			return false, false
		}
	case ai.Alphanumeric:
		if !IsCSET82(value) {
			return false, false
		}
	}
	if sp.IsDate() {
		if _, err := parseDate(value, sp.DateFormat, opts.CenturyPivot); err != nil {
			return false, false
		}
	}
	if sp.CheckDigit && !CheckDigitOK(value) {
		return false, true
	}
	return true, false
}

// elementScore is the per-element portion of the scoring model: evidence
// that this particular boundary is right, given what the parse already
// holds. Path-level adjustments (pattern, Occam) are applied elsewhere.
func elementScore(st *beamState, sp *ai.Spec, e *Element, s string,
	opts *DecodeOptions, w *Weights) float64 {

	sc := 0.0
	l := len(e.RawValue)

	if sp.Code == "01" && CheckDigitOK(e.RawValue) {
		sc += w.GTINCheckDigit
	}
	if dateBonusAIs[sp.Code] && e.HasDate {
		sc += w.ValidDate
		if e.DayUnspecified {
			sc -= w.DayZeroPenalty
		}
	}
	if sp.Code == "10" && l >= 2 && l <= 10 {
		sc += w.LotLength
	}
	if sp.Code == "21" && l >= 6 && l <= 20 {
		sc += w.SerialLength
	}

	if sp.Code == "21" && splitRecoversDate(s, e.End, opts) &&
		couldExtendPast(s, e.Start+len(sp.Code), sp, l) {
		sc += w.EmbeddedDateSplit
	}

	if sp.Class == ai.Internal && !opts.internalWhitelisted(sp.Code) {
		if prev := lastElement(st); prev != nil && prev.End == e.Start &&
			(prev.AI == "10" || prev.AI == "21") {
			if psp, ok := ai.Get(prev.AI); ok &&
				len(prev.RawValue)+len(sp.Code)+l <= psp.MaxLength {
				sc += w.InternalAbsorption
			}
		}
	}

	if sp.Code == "10" && st.lotCount >= 1 {
		sc += w.DuplicateLot
	}
	if sp.Code == "21" && st.serialCount >= 1 {
		sc += w.DuplicateSerial
	}
	return sc
}

func noteElement(st *beamState, sp *ai.Spec, e *Element) {
	switch sp.Code {
	case "10":
		st.lotCount++
	case "21":
		st.serialCount++
	}
	st.dayZero = st.dayZero || e.DayUnspecified
	st.prevVar = !sp.FixedLength
}

func lastElement(st *beamState) *Element {
	if len(st.elements) == 0 {
		return nil
	}
	return &st.elements[len(st.elements)-1]
}

// splitRecoversDate reports whether the input at pos begins with an
// expiry-family AI followed by a calendar-valid date -- the signature of a
// variable field that was about to swallow a date block.
func splitRecoversDate(s string, pos int, opts *DecodeOptions) bool {
	sp := ai.Lookup(s, pos)
	if sp == nil || !dateBonusAIs[sp.Code] {
		return false
	}
	vstart := pos + len(sp.Code)
	if vstart+sp.MinLength > len(s) {
		return false
	}
	_, err := parseDate(s[vstart:vstart+sp.MinLength], sp.DateFormat, opts.CenturyPivot)
	return err == nil
}

// couldExtendPast reports whether the variable value at vstart, currently
// cut at length l, has at least one longer admissible length -- that is,
// whether stopping here was a choice rather than a necessity.
func couldExtendPast(s string, vstart int, sp *ai.Spec, l int) bool {
	max := sp.MaxLength
	if max > len(s)-vstart {
		max = len(s) - vstart
	}
	for l2 := l + 1; l2 <= max; l2++ {
		c := s[vstart+l2-1]
		if c == Sentinel {
			return false
		}
		if sp.DataType == ai.Numeric && (c < '0' || c > '9') {
			return false
		}
		if sp.DataType == ai.Alphanumeric && (c >= 127 || cset82[c] == 0) {
			return false
		}
		end := vstart + l2
		if end == len(s) || s[end] == Sentinel || ai.CodeStart(s[end]) {
			return true
		}
	}
	return false
}

// betterParse orders completed parses: by score when they are clearly
// apart, and by the deterministic tiebreak chain when they are within the
// tiebreak window -- canonical ordering first, then fewer internal AIs,
// then the shorter lot when a serial is present, then the lexicographic AI
// sequence.
func betterParse(a, b *beamState, w *Weights) bool {
	if math.Abs(a.score-b.score) > w.TiebreakWindow {
		return a.score > b.score
	}
	if ap, bp := a.patterned(), b.patterned(); ap != bp {
		return ap
	}
	if an, bn := a.internalCount(), b.internalCount(); an != bn {
		return an < bn
	}
	if a.hasAI("21") && b.hasAI("21") {
		if al, bl := a.lotValueLen(), b.lotValueLen(); al != bl {
			return al < bl
		}
	}
	if as, bs := a.aiSequence(), b.aiSequence(); as != bs {
		return as < bs
	}
	return a.score > b.score
}

// dedupe collapses states that spell the same parse, keeping the best
// score for each. Input order is preserved for the survivors.
func dedupe(states []beamState) []beamState {
	best := make(map[string]int, len(states))
	var out []beamState
	for i := range states {
		sig := states[i].signature()
		if j, seen := best[sig]; seen {
			if states[i].score > out[j].score {
				out[j] = states[i]
			}
			continue
		}
		best[sig] = len(out)
		out = append(out, states[i])
	}
	return out
}
