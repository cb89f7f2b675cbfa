/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"github.com/pkg/errors"
)

// trie is a digit-indexed prefix tree over AI codes. Terminal nodes carry the
// Spec for the code spelled by the path to them. Because AI codes are at most
// four digits, every lookup touches at most four nodes regardless of how many
// codes the catalogue holds.
type trie struct {
	root trieNode
}

type trieNode struct {
	children [10]*trieNode
	spec     *Spec
}

func digit(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

func (t *trie) insert(s *Spec) error {
	if s.Code == "" {
		return errors.New("empty AI code")
	}
	n := &t.root
	for i := 0; i < len(s.Code); i++ {
		d, ok := digit(s.Code[i])
		if !ok {
			return errors.Errorf("AI code %q contains a non-digit", s.Code)
		}
		if n.children[d] == nil {
			n.children[d] = &trieNode{}
		}
		n = n.children[d]
	}
	if n.spec != nil {
		return errors.Errorf("duplicate AI code %q", s.Code)
	}
	n.spec = s
	return nil
}

// longest returns the Spec of the longest AI code that is a prefix of s
// beginning at pos, or nil if no code matches there. When a shorter and a
// longer code both match, the deepest terminal wins (e.g. "3102..." matches
// AI 3102, not a hypothetical AI 31).
func (t *trie) longest(s string, pos int) *Spec {
	var match *Spec
	n := &t.root
	for i := pos; i < len(s); i++ {
		d, ok := digit(s[i])
		if !ok || n.children[d] == nil {
			break
		}
		n = n.children[d]
		if n.spec != nil {
			match = n.spec
		}
	}
	return match
}

// all returns every Spec whose code is a prefix of s beginning at pos,
// shortest first. The reconstructor uses this to admit ambiguity between,
// say, a 2-digit and a 4-digit code at the same offset.
func (t *trie) all(s string, pos int) []*Spec {
	var matches []*Spec
	n := &t.root
	for i := pos; i < len(s); i++ {
		d, ok := digit(s[i])
		if !ok || n.children[d] == nil {
			break
		}
		n = n.children[d]
		if n.spec != nil {
			matches = append(matches, n.spec)
		}
	}
	return matches
}

// codeStart reports whether at least one AI code begins with c.
func (t *trie) codeStart(c byte) bool {
	d, ok := digit(c)
	return ok && t.root.children[d] != nil
}
