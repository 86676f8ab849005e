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
	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/ptoie/udtree"
)

// buildComplements builds the complement(s) of one predicate. effIdx is
// the effective verb: the predicate token itself for a plain verbal
// relation, or the predicate nominal/adjective the copula attaches to
// when the relation's core is a copula. subject and relation are passed
// through unchanged into every returned Extraction; only Complement (and,
// for subordinate clauses, SubExtractions) varies between them.
//
// A predicate can surface more than one complement head (an object and an
// oblique sharing the same verb, say). All of them are always kept
// together in one combined complement span. When CoordinatingConjunctions
// is on, each of several such heads also yields an extraction of its own,
// and a head's internal coordination (conj peers) is split out, one
// extraction per peer; both come alongside the combined span. A ccomp/advcl
// head is different again: it introduces a subordinate clause, handled
// as its own nested sub-extraction rather than folded into the combined
// span.
func buildComplements(sent *udtree.Sentence, effIdx int, subject, relation TripleElement, cfg Config) []Extraction {
	core := relation.CoreToken()
	isCopula := core != nil && core.Deprel.Is(udtree.Cop)

	var heads []int
	if isCopula {
		heads = append(heads, effIdx)
	}
	for _, c := range sent.Children(effIdx) {
		tk := sent.MustToken(c)
		if tk.Deprel.IsComplementHead() || tk.Deprel.IsSubordinateClause() {
			heads = append(heads, c)
		}
	}

	if len(heads) == 0 {
		return []Extraction{{
			Subject:    subject,
			Relation:   relation,
			Complement: EmptyElement(sent),
			Source:     SourceBaseline,
		}}
	}

	var plainHeads, subHeads []int
	for _, h := range heads {
		if sent.MustToken(h).Deprel.IsSubordinateClause() {
			subHeads = append(subHeads, h)
		} else {
			plainHeads = append(plainHeads, h)
		}
	}

	var out []Extraction

	if len(plainHeads) > 0 {
		combined := EmptyElement(sent)
		var decomposed []Extraction
		for _, h := range plainHeads {
			span, peerExts := coordinatedComplementSpan(sent, h, subject, relation)
			combined.Merge(span)
			if cfg.CoordinatingConjunctions {
				if len(plainHeads) > 1 {
					decomposed = append(decomposed, Extraction{
						Subject:    subject,
						Relation:   relation,
						Complement: span,
						Source:     SourceConjunction,
					})
				}
				decomposed = append(decomposed, peerExts...)
			}
		}
		out = append(out, Extraction{
			Subject:    subject,
			Relation:   relation,
			Complement: combined,
			Source:     SourceBaseline,
		})
		out = append(out, decomposed...)
	}

	for _, h := range subHeads {
		out = append(out, buildSubordinateExtractions(sent, h, subject, relation, cfg)...)
	}

	return out
}

// buildSubordinateExtractions handles a ccomp/advcl head. When
// SubordinatingConjunctions is off, or the clause carries no explicit
// subject of its own, the whole clause is folded back into a single plain
// complement span, same as any other head. Otherwise the outer complement
// shrinks to just the subordinating mark (if any), and the clause becomes
// a nested sub-extraction with its own subject/relation/complement.
func buildSubordinateExtractions(sent *udtree.Sentence, clauseHead int, subject, relation TripleElement, cfg Config) []Extraction {
	fallback := func() []Extraction {
		elem := complementDFS(sent, clauseHead)
		if markIdx, ok := sent.FirstChildWithDeprel(clauseHead, []udtree.Deprel{udtree.Mark}); ok {
			elem.Add(markIdx)
		}
		complement := subtractMembers(elem, subject, relation)
		return []Extraction{{
			Subject:    subject,
			Relation:   relation,
			Complement: complement,
			Source:     SourceBaseline,
		}}
	}

	if !cfg.SubordinatingConjunctions {
		return fallback()
	}

	pivot := relationPivot(sent, clauseHead)
	subRes := findSubject(sent, pivot, cfg, false)
	if !subRes.found || subRes.hidden {
		return fallback()
	}

	markElem := EmptyElement(sent)
	if markIdx, ok := sent.FirstChildWithDeprel(clauseHead, []udtree.Deprel{udtree.Mark}); ok {
		markElem = NewElement(sent, markIdx)
	}

	subRelation := buildRelation(sent, pivot, cfg)
	subEffIdx := effectiveVerbIndex(sent, subRelation)
	subExts := buildComplements(sent, subEffIdx, subRes.elem, subRelation, cfg)

	var nested []Extraction
	for _, e := range subExts {
		if e.IsValid(cfg) {
			nested = append(nested, e)
		}
	}
	if len(nested) == 0 {
		return fallback()
	}

	return []Extraction{{
		Subject:        subject,
		Relation:       relation,
		Complement:     markElem,
		SubExtractions: nested,
		Source:         SourceSubordinate,
	}}
}

// headSpanDFS builds one complement head's own span per spec.md §4.5:
// Nominal DFS (ignore_conjunctions=true) rooted at h, except for xcomp and
// advmod heads, which use the broader Complement DFS instead.
func headSpanDFS(sent *udtree.Sentence, h int) TripleElement {
	if sent.MustToken(h).Deprel.Is(udtree.Xcomp, udtree.Advmod) {
		return complementDFSOpts(sent, h, true)
	}
	return nominalDFS(sent, h, dfsOpts{ignoreConjunctions: true})
}

// coordinatedComplementSpan builds one complement head's combined span -
// the head itself plus every token reachable from it by a chain of conj
// (its coordinated peers), their cc connectors, and a borrowed leading
// preposition for any peer that lacks one of its own - together with the
// per-peer decomposed extractions ("gosta de banana, pera e maçã" yields
// one extraction each for banana, pera and maçã alongside the combined
// span; the decomposition is discarded by the caller when
// CoordinatingConjunctions is off).
func coordinatedComplementSpan(sent *udtree.Sentence, h int, subject, relation TripleElement) (TripleElement, []Extraction) {
	headElem := headSpanDFS(sent, h)
	combined := headElem.Clone()

	peers := collectConjPeers(sent, h)
	caseIdx, headHasCase := sent.FirstChildWithDeprel(h, []udtree.Deprel{udtree.Case})

	var decomposed []Extraction
	if len(peers) > 0 {
		decomposed = append(decomposed, Extraction{
			Subject:    subject,
			Relation:   relation,
			Complement: subtractMembers(headElem, subject, relation),
			Source:     SourceConjunction,
		})
	}
	if ccIdx, ok := sent.FirstChildWithDeprel(h, []udtree.Deprel{udtree.Cc}); ok {
		combined.Add(ccIdx)
	}

	for _, p := range peers {
		peerElem := nominalDFS(sent, p, dfsOpts{ignoreConjunctions: true})
		if headHasCase {
			if _, ok := sent.FirstChildWithDeprel(p, []udtree.Deprel{udtree.Case}); !ok {
				peerElem.Add(caseIdx)
			}
		}
		if ccIdx, ok := sent.FirstChildWithDeprel(p, []udtree.Deprel{udtree.Cc}); ok {
			combined.Add(ccIdx)
		}
		combined.Merge(peerElem)
		decomposed = append(decomposed, Extraction{
			Subject:    subject,
			Relation:   relation,
			Complement: subtractMembers(peerElem, subject, relation),
			Source:     SourceConjunction,
		})
	}

	return subtractMembers(combined, subject, relation), decomposed
}

// collectConjPeers walks the conj chain rooted at h (conj attachments can
// nest: a third coordinated item commonly attaches as conj of the second,
// not of h directly) and returns every peer found, excluding h itself.
func collectConjPeers(sent *udtree.Sentence, h int) []int {
	var peers []int
	seen := collections.NewSet[int]()
	seen.Add(h)
	queue := []int{h}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range sent.ChildrenWithDeprel(cur, udtree.Conj) {
			if seen.Contains(c) {
				continue
			}
			seen.Add(c)
			peers = append(peers, c)
			queue = append(queue, c)
		}
	}
	return peers
}

// subtractMembers removes every member of excludes from elem, returning a
// copy. It keeps a complement span from re-including tokens already
// claimed by the subject or the relation (most visibly the predicate
// nominal's own cop/aux/nsubj children in a copula construction).
func subtractMembers(elem TripleElement, excludes ...TripleElement) TripleElement {
	out := elem.Clone()
	for _, ex := range excludes {
		for _, idx := range ex.Members() {
			out.Remove(idx)
		}
	}
	return out
}
