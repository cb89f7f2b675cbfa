/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Weights are the reconstructor's scoring constants. The defaults are
// calibrated against labeled pharmaceutical scans; keeping them in one
// externally loadable struct means recalibration against new data is a
// configuration change.
//
// Only relative orderings matter to the search; the absolute magnitudes
// matter to the confidence mapping.
type Weights struct {
	// GTINCheckDigit rewards a valid mod-10 check digit on AI 01. It is
	// the hard anchor: a parse that places the GTIN boundary correctly
	// nearly always wins.
	GTINCheckDigit float64 `yaml:"gtin_check_digit"`

	// ValidDate rewards a calendar-valid date on AIs 17, 11, 13, or 15
	// with a concrete day. DayZeroPenalty is subtracted from it when the
	// date used the legacy day-00 form.
	ValidDate      float64 `yaml:"valid_date"`
	DayZeroPenalty float64 `yaml:"day_zero_penalty"`

	// LotLength and SerialLength reward lot (10) and serial (21) values
	// whose lengths fall in the ranges the industry actually uses.
	LotLength    float64 `yaml:"lot_length"`
	SerialLength float64 `yaml:"serial_length"`

	// PatternBonus rewards the two documented pharma orderings,
	// (01)(17)(10)(21) and (01)(21)(17)(10).
	PatternBonus float64 `yaml:"pattern_bonus"`

	// EmbeddedDateSplit rewards stopping a serial (21) value exactly
	// where a date AI with a calendar-valid value begins, when the value
	// could legally have extended across it. Lot (10) values do not earn
	// it.
	EmbeddedDateSplit float64 `yaml:"embedded_date_split"`

	// InternalAbsorption penalizes splitting an internal AI (90-99) out
	// of data the preceding lot or serial could have absorbed. Negative.
	InternalAbsorption float64 `yaml:"internal_absorption"`

	// DuplicateLot and DuplicateSerial penalize a second occurrence of
	// AI 10 or 21 in one parse. Negative.
	DuplicateLot    float64 `yaml:"duplicate_lot"`
	DuplicateSerial float64 `yaml:"duplicate_serial"`

	// SentinelUse mildly rewards parses that respect separators that are
	// actually present.
	SentinelUse float64 `yaml:"sentinel_use"`

	// OccamBonus goes to the completed parse(s) with the fewest
	// elements.
	OccamBonus float64 `yaml:"occam_bonus"`

	// TiebreakWindow is the score distance within which two parses are
	// considered tied and the deterministic tiebreak chain applies.
	TiebreakWindow float64 `yaml:"tiebreak_window"`

	// Tau scales the best-versus-runner-up score gap in the confidence
	// mapping; 34.6 maps a 60-point gap to roughly 0.85.
	Tau float64 `yaml:"tau"`
}

var defaultWeights = DefaultWeights()

// DefaultWeights returns the calibrated weight set.
func DefaultWeights() Weights {
	return Weights{
		GTINCheckDigit:     1000,
		ValidDate:          250,
		DayZeroPenalty:     60,
		LotLength:          20,
		SerialLength:       15,
		PatternBonus:       120,
		EmbeddedDateSplit:  90,
		InternalAbsorption: -200,
		DuplicateLot:       -150,
		DuplicateSerial:    -120,
		SentinelUse:        5,
		OccamBonus:         10,
		TiebreakWindow:     10,
		Tau:                34.6,
	}
}

// LoadWeights reads a YAML weight file and merges it over the defaults, so
// a calibration file only needs to name the weights it changes.
func LoadWeights(r io.Reader) (Weights, error) {
	w := DefaultWeights()
	data, err := io.ReadAll(r)
	if err != nil {
		return w, errors.Wrap(err, "reading weights")
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, errors.Wrap(err, "parsing weights")
	}
	return w, nil
}

// confidence maps the gap between the best and second-best complete parse
// onto [0, 1] with a logistic curve: even gaps mean a coin toss (0.5), and
// the curve saturates as the gap grows past a few tiebreak windows.
func (w *Weights) confidence(best, second float64) float64 {
	tau := w.Tau
	if tau <= 0 {
		tau = DefaultWeights().Tau
	}
	return 1 / (1 + math.Exp(-(best-second)/tau))
}
