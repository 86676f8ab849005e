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

// buildRelation assembles the verbal nucleus rooted at s: auxiliaries,
// the expl:pv clitic, and a closed set of adverbs, descending only into
// children that qualify.
func buildRelation(sent *udtree.Sentence, sIdx int, cfg Config) TripleElement {
	elem := NewElement(sent, sIdx)
	visited := collections.NewSet[int]()
	visited.Add(sIdx)
	stack := []int{sIdx}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children := sent.Children(cur)
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			if visited.Contains(c) {
				continue
			}
			tk := sent.MustToken(c)
			include := false
			switch {
			case tk.Deprel.IsRelationVerb() && tk.PoS.IsVerbal():
				include = true
			case tk.Deprel.IsRelationModifier():
				include = true
			case tk.Deprel.Is(udtree.Advmod) && cfg.isRelationAdverb(tk.Lemma):
				include = true
			}
			if !include {
				continue
			}
			visited.Add(c)
			elem.Add(c)
			stack = append(stack, c)
		}
	}
	return elem
}

// relationPivot resolves the token a predicate's relation/subject search
// should actually start from: the predicate's own cop child when it has
// one (a copula construction is headed, syntactically, by the predicate
// nominal/adjective, but the surface relation token is the copula
// itself), otherwise the predicate token unchanged.
func relationPivot(sent *udtree.Sentence, headIdx int) int {
	if copIdx, ok := sent.FirstChildWithDeprel(headIdx, []udtree.Deprel{udtree.Cop}); ok {
		return copIdx
	}
	return headIdx
}

// effectiveVerbIndex resolves "effective_verb" for a relation: the
// predicate itself, or - when the relation's core is a copula - the
// copula's head (the actual predicate the copula attaches to).
func effectiveVerbIndex(sent *udtree.Sentence, relation TripleElement) int {
	core := relation.CoreToken()
	if core == nil {
		return 0
	}
	if core.Deprel.Is(udtree.Cop) {
		return core.Head
	}
	return core.Index
}

// relationIsValid checks the relation validity rule on its own: the
// element is synthetic or contains a verb/aux (Extraction.IsValid applies
// the same test together with its subject checks).
func relationIsValid(elem TripleElement) bool {
	return elem.IsSynthetic() || elem.ContainsVerbOrAux()
}
