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

// Package extract turns a parsed Portuguese sentence into a set of open
// (subject; relation; complement) triples.
package extract

import "github.com/czcorpus/ptoie/udtree"

// Extract runs every enabled module over sent and returns the
// deduplicated set of valid extractions. The core traversal never
// mutates sent; cfg is read-only and passed by value down the call tree.
//
// The sentence root is not the only independent predicate head: a
// relative-clause verb attached to a nominal as acl/acl:relcl (§4.3 step
// 6b) stands on its own, its subject resolved from its head rather than
// from a subject child, and is extracted in addition to - not instead of
// - the main predicate it modifies (spec.md §8 scenario 6).
func Extract(sent *udtree.Sentence, cfg Config) *ExtractionSet {
	set := NewExtractionSet()

	var clausal []Extraction
	if root, ok := sent.Root(); ok {
		clausal = append(clausal, collectPredicateGroup(sent, root.Index, cfg)...)
	}
	for _, t := range sent.Tokens() {
		if t.Deprel.Is(udtree.Acl, udtree.AclRelcl) && t.PoS.IsVerbal() {
			clausal = append(clausal, collectPredicateGroup(sent, t.Index, cfg)...)
		}
	}
	for _, e := range clausal {
		set.Add(e)
	}

	appositives := buildAppositiveExtractions(sent, cfg)
	for _, e := range appositives {
		if e.IsValid(cfg) {
			set.Add(e)
		}
	}

	if cfg.AppositiveTransitivity {
		for _, e := range applyAppositiveTransitivity(appositives, clausal) {
			if e.IsValid(cfg) {
				set.Add(e)
			}
		}
	}

	return set
}

// collectPredicateGroup builds one independent predicate's coordinated
// group (the predicate itself plus any verb-conjunction peers) and returns
// every valid extraction it yields.
func collectPredicateGroup(sent *udtree.Sentence, predicateIdx int, cfg Config) []Extraction {
	var out []Extraction
	for _, exts := range buildCoordinatedGroup(sent, predicateIdx, cfg) {
		for _, e := range exts {
			if e.IsValid(cfg) {
				out = append(out, e)
			}
		}
	}
	return out
}

// buildCoordinatedGroup builds the root predicate's extractions together
// with any verb-conjunction peers (C7): a peer shares the root's subject,
// gets its own relation and complement, and the group's baseline
// extractions go through shared-complement redistribution before
// returning.
func buildCoordinatedGroup(sent *udtree.Sentence, rootIdx int, cfg Config) [][]Extraction {
	rootExts, subjRes := buildPredicateExtractions(sent, rootIdx, cfg)
	group := [][]Extraction{rootExts}

	if cfg.CoordinatingConjunctions && subjRes.found {
		for _, peer := range conjunctVerbPeers(sent, rootIdx) {
			group = append(group, buildConjunctPeerExtractions(sent, peer, subjRes.elem, cfg))
		}
	}

	redistributeComplements(group)
	return group
}

// buildPredicateExtractions runs the subject finder, relation builder and
// complement builder for one independent predicate, returning both its
// extractions and the subject-finder outcome so a coordinated verb peer
// can reuse the same subject rather than look for one of its own.
func buildPredicateExtractions(sent *udtree.Sentence, predicateIdx int, cfg Config) ([]Extraction, subjectResult) {
	pivot := relationPivot(sent, predicateIdx)

	subjRes := findSubject(sent, pivot, cfg, true)
	if !subjRes.found {
		return nil, subjRes
	}

	relation := buildRelation(sent, pivot, cfg)
	if !relationIsValid(relation) {
		return nil, subjRes
	}

	effIdx := effectiveVerbIndex(sent, relation)
	return buildComplements(sent, effIdx, subjRes.elem, relation, cfg), subjRes
}

// buildConjunctPeerExtractions builds a coordinated verb peer's own
// extractions, reusing subject (the parent predicate's subject) instead of
// running the subject finder again - a valid peer by definition carries no
// subject child of its own.
func buildConjunctPeerExtractions(sent *udtree.Sentence, peerIdx int, subject TripleElement, cfg Config) []Extraction {
	pivot := relationPivot(sent, peerIdx)
	relation := buildRelation(sent, pivot, cfg)
	if !relationIsValid(relation) {
		return nil
	}
	effIdx := effectiveVerbIndex(sent, relation)
	return buildComplements(sent, effIdx, subject, relation, cfg)
}

// redistributeComplements applies the shared-complement redistribution
// rule across a coordinated group's baseline extractions: if the last
// predicate's baseline complement is non-empty and an earlier predicate's
// is empty, and both relation cores are plain verbs (not AUX-only), the
// later complement is copied into the earlier extraction in place.
func redistributeComplements(group [][]Extraction) {
	var baselines []*Extraction
	for _, exts := range group {
		for i := range exts {
			if exts[i].Source == SourceBaseline {
				baselines = append(baselines, &exts[i])
				break
			}
		}
	}
	if len(baselines) < 2 {
		return
	}
	last := baselines[len(baselines)-1]
	if last.Complement.IsEmpty() || !isPlainVerbRelation(last.Relation) {
		return
	}
	for _, b := range baselines[:len(baselines)-1] {
		if b.Complement.IsEmpty() && isPlainVerbRelation(b.Relation) {
			b.Complement = last.Complement
		}
	}
}

func isPlainVerbRelation(r TripleElement) bool {
	core := r.CoreToken()
	return core != nil && core.PoS.Raw == udtree.PosVERB
}
