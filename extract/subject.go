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

import "github.com/czcorpus/ptoie/udtree"

// subjectResult is the outcome of the subject finder.
type subjectResult struct {
	elem   TripleElement
	hidden bool
	found  bool // false means "no subject": the caller must discard the extraction
}

// findSubject locates the logical subject of the predicate head at vIdx.
// allowHidden gates step 6c (some callers, e.g. the subordinate-clause
// probe of §4.5, explicitly exclude the hidden-subject injection path).
func findSubject(sent *udtree.Sentence, vIdx int, cfg Config, allowHidden bool) subjectResult {
	v := sent.MustToken(vIdx)

	// Step 1: redirect aux/aux:pass/cop to the true predicate.
	if v.Deprel.Is(udtree.Aux, udtree.AuxPass, udtree.Cop) {
		vIdx = v.Head
		if vIdx == 0 {
			return subjectResult{elem: EmptyElement(sent), found: false}
		}
		v = sent.MustToken(vIdx)
	}

	// Step 2: first SUBJECT_DEPS child in sentence order.
	if subjIdx, ok := sent.FirstChildWithDeprel(vIdx, udtree.SubjectDeps); ok {
		subjTok := sent.MustToken(subjIdx)

		// Step 3: relative pronoun subject -> antecedent lookup.
		if (subjTok.PoS.Raw == udtree.PosPRON || subjTok.PoS.Raw == udtree.PosSCONJ) && subjTok.Feats.IsRelativePronoun() {
			if v.Head == 0 {
				return subjectResult{elem: EmptyElement(sent), found: true}
			}
			elem := nominalDFS(sent, v.Head, dfsOpts{subjectBoundary: true})
			return subjectResult{elem: elem, found: true}
		}

		// Step 4: clausal subject.
		if subjTok.Deprel.Is(udtree.Csubj, udtree.CsubjPass) {
			elem := complementDFS(sent, subjIdx)
			return subjectResult{elem: elem, found: true}
		}

		// Step 5: ordinary nominal subject. An appositive attached to it is
		// left out; the appositive module reports it as its own is-a triple.
		elem := nominalDFS(sent, subjIdx, dfsOpts{ignoreAppos: true, subjectBoundary: true})
		return subjectResult{elem: elem, found: true}
	}

	// Step 6: no SUBJECT_DEPS child.
	hasAuxPass := len(sent.ChildrenWithDeprel(vIdx, udtree.AuxPass)) > 0
	if hasAuxPass || cfg.isExistentialVerb(v.Lemma) {
		if objIdx, ok := sent.FirstChildWithDeprel(vIdx, []udtree.Deprel{udtree.Obj}); ok {
			elem := nominalDFS(sent, objIdx, dfsOpts{subjectBoundary: true})
			return subjectResult{elem: elem, found: true}
		}
	}

	if v.Deprel.Is(udtree.Acl, udtree.AclRelcl) {
		if v.Head != 0 {
			elem := nominalDFS(sent, v.Head, dfsOpts{subjectBoundary: true})
			return subjectResult{elem: elem, found: true}
		}
	}

	impersonal := v.Feats.Person() == "3"
	if allowHidden && (cfg.HiddenSubjects || impersonal) {
		return subjectResult{elem: EmptyElement(sent), hidden: true, found: true}
	}

	return subjectResult{elem: EmptyElement(sent), found: false}
}
