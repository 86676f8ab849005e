// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extract

import (
	"sort"

	"github.com/czcorpus/ptoie/udtree"
)

// TripleElement is an ordered set of Token references drawn from a single
// Sentence, forming the subject, relation, or complement of an Extraction.
// A synthetic element (the injected appositive copula) carries its token
// directly instead of a sentence member set.
type TripleElement struct {
	sentence  *udtree.Sentence
	core      int
	members   []int // sorted, unique sentence indices; empty for a synthetic/empty element
	synthetic *udtree.Token
}

// EmptyElement returns the canonical empty TripleElement (hidden subject,
// missing complement).
func EmptyElement(sent *udtree.Sentence) TripleElement {
	return TripleElement{sentence: sent, core: 0}
}

// SyntheticElement builds a TripleElement wrapping a single injected
// token, bypassing the "must come from the sentence" invariant - used by
// the appositive module for the "é" relation.
func SyntheticElement(sent *udtree.Sentence, tok udtree.Token) TripleElement {
	return TripleElement{sentence: sent, synthetic: &tok}
}

// NewElement starts a builder rooted at the given sentence token index.
func NewElement(sent *udtree.Sentence, coreIdx int) TripleElement {
	return TripleElement{sentence: sent, core: coreIdx, members: []int{coreIdx}}
}

// Add appends a token index to the member set, keeping it sorted and
// unique (the "add_token" builder operation of Design Note 9).
func (e *TripleElement) Add(idx int) {
	for _, m := range e.members {
		if m == idx {
			return
		}
	}
	e.members = append(e.members, idx)
	sort.Ints(e.members)
}

// Remove drops a token index from the member set, if present (used by the
// subject-boundary leading-preposition exclusion).
func (e *TripleElement) Remove(idx int) {
	out := e.members[:0]
	for _, m := range e.members {
		if m != idx {
			out = append(out, m)
		}
	}
	e.members = out
}

func (e TripleElement) IsEmpty() bool {
	return e.synthetic == nil && len(e.members) == 0
}

func (e TripleElement) IsSynthetic() bool {
	return e.synthetic != nil
}

func (e TripleElement) CoreIndex() int {
	return e.core
}

// Members returns the sentence-order token indices of this element.
func (e TripleElement) Members() []int {
	return e.members
}

// Tokens resolves the member indices into their Token values, in sentence
// order.
func (e TripleElement) Tokens() []*udtree.Token {
	if e.synthetic != nil {
		return []*udtree.Token{e.synthetic}
	}
	out := make([]*udtree.Token, 0, len(e.members))
	for _, idx := range e.members {
		out = append(out, e.sentence.MustToken(idx))
	}
	return out
}

// CoreToken resolves the element's anchor token.
func (e TripleElement) CoreToken() *udtree.Token {
	if e.synthetic != nil {
		return e.synthetic
	}
	if e.core == 0 {
		return nil
	}
	return e.sentence.MustToken(e.core)
}

// ContainsVerbOrAux reports whether any member token is tagged VERB or AUX.
func (e TripleElement) ContainsVerbOrAux() bool {
	for _, tk := range e.Tokens() {
		if tk.PoS.IsVerbal() {
			return true
		}
	}
	return false
}

// IsSingleRelativePronoun reports whether the element consists solely of
// one relative-pronoun token.
func (e TripleElement) IsSingleRelativePronoun() bool {
	if len(e.members) != 1 {
		return false
	}
	return e.sentence.MustToken(e.members[0]).IsRelativePronoun()
}

// Merge combines the member sets of two elements rooted in the same
// sentence, used to fold head and peer spans into one combined complement.
func (e *TripleElement) Merge(other TripleElement) {
	for _, idx := range other.members {
		e.Add(idx)
	}
}

// Clone returns an independent copy whose member slice can be mutated
// without affecting the original - used when a combined complement span
// or a subtracted copy is built from an element that must stay unchanged.
func (e TripleElement) Clone() TripleElement {
	out := e
	out.members = append([]int(nil), e.members...)
	return out
}
