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

// dfsOpts configures the nominal phrase DFS.
type dfsOpts struct {
	ignoreConjunctions bool
	ignoreAppos        bool
	subjectBoundary    bool
}

// nominalDFS collects a nominal-like span rooted at start: a child is
// appended iff its dependency is in NominalDFSDeps, descending recursively
// into every included child. The traversal is iterative (an explicit
// stack, not native recursion) with a visited set guarding against
// malformed cyclic input.
func nominalDFS(sent *udtree.Sentence, start int, opts dfsOpts) TripleElement {
	elem := NewElement(sent, start)
	visited := collections.NewSet[int]()
	visited.Add(start)
	stack := []int{start}
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
			if tk.Deprel.Is(udtree.Conj, udtree.Cc) && opts.ignoreConjunctions {
				continue
			}
			if tk.Deprel.Is(udtree.Appos) && opts.ignoreAppos {
				continue
			}
			if !tk.Deprel.IsNominalDFS() {
				continue
			}
			visited.Add(c)
			elem.Add(c)
			stack = append(stack, c)
		}
	}
	if opts.subjectBoundary {
		dropLeadingCaseADP(sent, &elem)
	}
	return elem
}

// dropLeadingCaseADP implements the subject-boundary special case: when
// the element is serving as a subject and its leftmost member is an ADP
// with dep=case, that preposition is structural noise and is excluded.
func dropLeadingCaseADP(sent *udtree.Sentence, elem *TripleElement) {
	members := elem.Members()
	if len(members) == 0 {
		return
	}
	leftmost := sent.MustToken(members[0])
	if leftmost.PoS.Raw == udtree.PosADP && leftmost.Deprel.Is(udtree.Case) {
		elem.Remove(members[0])
	}
}

// complementDFS collects a broader span rooted at start: a child is
// appended iff its dependency is neither in ComplementIgnoreDeps nor in
// ComplementBoundaryDeps; a boundary child terminates descent along that
// branch without being included, an ignored child's subtree is never
// entered, everything else is entered recursively.
func complementDFS(sent *udtree.Sentence, start int) TripleElement {
	return complementDFSOpts(sent, start, false)
}

// complementDFSOpts is complementDFS with an extra ignoreConjunctions
// switch, used when building one coordinated peer's own span so that its
// sibling conj/cc tokens are collected separately by the caller.
func complementDFSOpts(sent *udtree.Sentence, start int, ignoreConjunctions bool) TripleElement {
	elem := NewElement(sent, start)
	visited := collections.NewSet[int]()
	visited.Add(start)
	stack := []int{start}
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
			if tk.Deprel.IsComplementIgnore() {
				continue
			}
			if ignoreConjunctions && tk.Deprel.Is(udtree.Conj, udtree.Cc) {
				continue
			}
			visited.Add(c)
			if tk.Deprel.IsComplementBoundary() {
				continue
			}
			elem.Add(c)
			stack = append(stack, c)
		}
	}
	return elem
}
