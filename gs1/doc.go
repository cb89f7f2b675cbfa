/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gs1 decodes GS1 element strings -- the concatenated Application
// Identifier and value pairs carried by GS1-128, GS1 DataMatrix, GS1 DataBar,
// and GS1 QR symbols -- into a structured, validated element list.
//
// An element string is a sequence of AI/value pairs. AIs in the predefined-
// length table (GS1 General Specifications section 7.8.4) carry values whose
// length is known from the code alone; every other AI's value runs until the
// next FNC1 group separator (ASCII 0x1D) or the end of the string. In a
// well-formed string that is all there is to it, and Decode handles such
// input with a single linear scan.
//
// Real scanning pipelines, pharmaceutical ones especially, are not so tidy.
// Many scanners, keyboard wedges, and intermediate systems strip the
// invisible group separator entirely, leaving a string like
//
//	01062867400002491728043010GB2C2171490437969853
//
// in which the boundary between the lot (10) value and the serial (21) that
// follows it is no longer marked. Such strings admit many syntactically
// consistent parses. When Decode detects this it switches from the linear
// scan to a bounded beam search that enumerates boundary hypotheses, prunes
// the ones that violate hard constraints (an impossible date, a failed mod-10
// check digit on a check-digit-bearing AI), scores the survivors on how well
// they match pharmaceutical labeling practice, and returns the best-scoring
// parse along with ranked alternatives and a confidence for the choice.
//
// Decode is a pure function. The AI dictionary it consults is compiled once
// at process start and shared read-only, every call is independent, and for
// a given input and options the result is identical across calls and across
// goroutines. Bad input never produces a Go error: every input, including
// the empty string, yields a well-formed DecodeResult whose Errors and
// Warnings fields describe what was wrong with it.
//
// The decoder starts from the character string a barcode reader already
// produced. Symbology-level concerns stay outside it, with one small
// exception: if the reader prepended an ISO/IEC 15424 symbology identifier
// such as "]d2", Decode strips it and records the symbology name.
package gs1
