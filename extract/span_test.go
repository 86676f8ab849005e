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
	"testing"

	"github.com/czcorpus/ptoie/udtree"
	"github.com/stretchr/testify/assert"
)

// "O gato preto de Ana dorme." - gato(2) <- det O(1), amod preto(3), nmod Ana(5) <- case de(4)
func nominalDFSFixture(t *testing.T) *udtree.Sentence {
	return mustSentence(t, "s",
		tok(1, "O", udtree.DET, udtree.Det, 2),
		tok(2, "gato", udtree.NOUN, udtree.Nsubj, 6),
		tok(3, "preto", udtree.ADJ, udtree.Amod, 2),
		tok(4, "de", udtree.ADP, udtree.Case, 5),
		tok(5, "Ana", udtree.PROPN, udtree.Nmod, 2),
		tok(6, "dorme", udtree.VERB, udtree.Root, 0),
	)
}

func TestNominalDFS_CollectsNominalSpan(t *testing.T) {
	sent := nominalDFSFixture(t)
	elem := nominalDFS(sent, 2, dfsOpts{})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, elem.Members())
}

func TestNominalDFS_SubjectBoundaryDropsLeadingCaseADP(t *testing.T) {
	sent := mustSentence(t, "s",
		tok(1, "de", udtree.ADP, udtree.Case, 2),
		tok(2, "Ana", udtree.PROPN, udtree.Nsubj, 3),
		tok(3, "chegou", udtree.VERB, udtree.Root, 0),
	)
	elem := nominalDFS(sent, 2, dfsOpts{subjectBoundary: true})
	assert.Equal(t, []int{2}, elem.Members())

	elemNoBoundary := nominalDFS(sent, 2, dfsOpts{})
	assert.Equal(t, []int{1, 2}, elemNoBoundary.Members())
}

func TestNominalDFS_IgnoreConjunctionsAndAppos(t *testing.T) {
	sent := mustSentence(t, "s",
		tok(1, "banana", udtree.NOUN, udtree.Root, 0),
		tok(2, "e", udtree.CCONJ, udtree.Cc, 3),
		tok(3, "pera", udtree.NOUN, udtree.Conj, 1),
		tok(4, "fruta", udtree.NOUN, udtree.Appos, 1),
	)
	full := nominalDFS(sent, 1, dfsOpts{})
	assert.Equal(t, []int{1, 2, 3, 4}, full.Members())

	noConj := nominalDFS(sent, 1, dfsOpts{ignoreConjunctions: true})
	assert.Equal(t, []int{1, 4}, noConj.Members())

	noAppos := nominalDFS(sent, 1, dfsOpts{ignoreAppos: true})
	assert.Equal(t, []int{1, 2, 3}, noAppos.Members())
}

// "Ele disse que Maria chegou." - disse(2)<-root, ccomp chegou(5)<-mark que(3), nsubj Maria(4)
func complementDFSFixture(t *testing.T) *udtree.Sentence {
	return mustSentence(t, "s",
		tok(1, "Ele", udtree.PRON, udtree.Nsubj, 2),
		tok(2, "disse", udtree.VERB, udtree.Root, 0),
		tok(3, "que", udtree.SCONJ, udtree.Mark, 5),
		tok(4, "Maria", udtree.PROPN, udtree.Nsubj, 5),
		tok(5, "chegou", udtree.VERB, udtree.Ccomp, 2),
	)
}

func TestComplementDFS_StopsAtBoundaryAndSkipsIgnored(t *testing.T) {
	sent := complementDFSFixture(t)
	elem := complementDFS(sent, 5)
	// "que" is a boundary (excluded but descent continues past it is moot -
	// it has no children here); "Maria" is ignored (ComplementIgnoreDeps).
	assert.Equal(t, []int{5}, elem.Members())
}

func TestComplementDFSOpts_IgnoreConjunctions(t *testing.T) {
	sent := mustSentence(t, "s",
		tok(1, "gosta", udtree.VERB, udtree.Root, 0),
		tok(2, "de", udtree.ADP, udtree.Case, 3),
		tok(3, "banana", udtree.NOUN, udtree.Obj, 1),
		tok(4, "e", udtree.CCONJ, udtree.Cc, 5),
		tok(5, "pera", udtree.NOUN, udtree.Conj, 3),
	)
	withConj := complementDFSOpts(sent, 3, false)
	assert.Equal(t, []int{2, 3, 4, 5}, withConj.Members())

	withoutConj := complementDFSOpts(sent, 3, true)
	assert.Equal(t, []int{2, 3}, withoutConj.Members())
}
