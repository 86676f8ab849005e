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

// TestExtract_SimpleTransitiveSentence covers "Ele compra carros."
func TestExtract_SimpleTransitiveSentence(t *testing.T) {
	sent := mustSentence(t, "s1",
		tok(1, "Ele", udtree.PRON, udtree.Nsubj, 2),
		tok(2, "compra", udtree.VERB, udtree.Root, 0),
		tok(3, "carros", udtree.NOUN, udtree.Obj, 2),
	)
	set := Extract(sent, DefaultConfig())
	assert.Equal(t, []string{"(Ele; compra; carros)"}, renderAll(set.Items()))
}

// TestExtract_CopulaSentence covers "Ele é professor."
func TestExtract_CopulaSentence(t *testing.T) {
	sent := mustSentence(t, "s2",
		tok(1, "Ele", udtree.PRON, udtree.Nsubj, 3),
		tok(2, "é", udtree.AUX, udtree.Cop, 3),
		tok(3, "professor", udtree.NOUN, udtree.Root, 0),
	)
	set := Extract(sent, DefaultConfig())
	assert.Equal(t, []string{"(Ele; é; professor)"}, renderAll(set.Items()))
}

// TestExtract_PassiveSentence covers "O bolo foi comido." - object-as-subject
// promotion under a passive auxiliary.
func TestExtract_PassiveSentence(t *testing.T) {
	sent := mustSentence(t, "s3",
		tok(1, "O", udtree.DET, udtree.Det, 2),
		tok(2, "bolo", udtree.NOUN, udtree.Obj, 4),
		tok(3, "foi", udtree.AUX, udtree.AuxPass, 4),
		tok(4, "comido", udtree.VERB, udtree.Root, 0),
	)
	set := Extract(sent, DefaultConfig())
	assert.Equal(t, []string{"(O bolo; foi comido; )"}, renderAll(set.Items()))
}

// TestExtract_CoordinatedVerbsAndComplements covers "Ele compra e vende
// carros e motos." with coordination decomposition enabled. The object is
// attached to the second (conj) verb only, matching spec.md §8 scenario
// 2's shape: the first verb's baseline complement starts empty and is
// filled in by redistribution (§4.5), which only ever copies forward from
// the last coordinated predicate to an earlier one, never the reverse -
// so only "vende", the structural owner of the object, decomposes into
// the single-item extractions.
func TestExtract_CoordinatedVerbsAndComplements(t *testing.T) {
	sent := mustSentence(t, "s4",
		tok(1, "Ele", udtree.PRON, udtree.Nsubj, 2),
		tok(2, "compra", udtree.VERB, udtree.Root, 0),
		tok(3, "e", udtree.CCONJ, udtree.Cc, 4),
		tok(4, "vende", udtree.VERB, udtree.Conj, 2),
		tok(5, "carros", udtree.NOUN, udtree.Obj, 4),
		tok(6, "e", udtree.CCONJ, udtree.Cc, 7),
		tok(7, "motos", udtree.NOUN, udtree.Conj, 5),
	)
	cfg := DefaultConfig()
	cfg.CoordinatingConjunctions = true
	set := Extract(sent, cfg)
	got := renderAll(set.Items())
	assert.Contains(t, got, "(Ele; compra; carros e motos)")
	assert.Contains(t, got, "(Ele; vende; carros e motos)")
	assert.Contains(t, got, "(Ele; vende; carros)")
	assert.Contains(t, got, "(Ele; vende; motos)")
	assert.NotContains(t, got, "(Ele; compra; carros)")
	assert.NotContains(t, got, "(Ele; compra; motos)")
}

// TestExtract_SharedComplementRedistribution covers spec.md §8 scenario 2
// literally: "Ele leu e escreveu um livro." - the object attaches only to
// the later coordinated verb, so the earlier one's empty baseline
// complement must be backfilled by redistribution rather than left empty.
func TestExtract_SharedComplementRedistribution(t *testing.T) {
	sent := mustSentence(t, "s4b",
		tok(1, "Ele", udtree.PRON, udtree.Nsubj, 2),
		tok(2, "leu", udtree.VERB, udtree.Root, 0),
		tok(3, "e", udtree.CCONJ, udtree.Cc, 4),
		tok(4, "escreveu", udtree.VERB, udtree.Conj, 2),
		tok(5, "um", udtree.DET, udtree.Det, 6),
		tok(6, "livro", udtree.NOUN, udtree.Obj, 4),
	)
	cfg := DefaultConfig()
	cfg.CoordinatingConjunctions = true
	set := Extract(sent, cfg)
	got := renderAll(set.Items())
	assert.ElementsMatch(t, []string{
		"(Ele; leu; um livro)",
		"(Ele; escreveu; um livro)",
	}, got)
}

// TestExtract_SubordinateClauseNoSubjectFoldsBack covers spec.md §8
// scenario 5: "Ele disse que iria viajar." - the ccomp clause carries no
// explicit subject of its own, so it folds back into a single flat
// complement on the outer extraction instead of spawning a sub-extraction.
func TestExtract_SubordinateClauseNoSubjectFoldsBack(t *testing.T) {
	sent := mustSentence(t, "s5b",
		tok(1, "Ele", udtree.PRON, udtree.Nsubj, 2),
		tok(2, "disse", udtree.VERB, udtree.Root, 0),
		tok(3, "que", udtree.SCONJ, udtree.Mark, 4),
		tok(4, "iria", udtree.VERB, udtree.Ccomp, 2),
		tok(5, "viajar", udtree.VERB, udtree.Xcomp, 4),
	)
	cfg := DefaultConfig()
	cfg.SubordinatingConjunctions = true
	set := Extract(sent, cfg)
	items := set.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "Ele", Render(items[0].Subject))
	assert.Equal(t, "disse", Render(items[0].Relation))
	assert.Equal(t, "que iria viajar", Render(items[0].Complement))
	assert.Empty(t, items[0].SubExtractions)
}

// TestExtract_SubordinateClause covers "Ele disse que Maria chegou." with
// subordinate nesting enabled.
func TestExtract_SubordinateClause(t *testing.T) {
	sent := mustSentence(t, "s5",
		tok(1, "Ele", udtree.PRON, udtree.Nsubj, 2),
		tok(2, "disse", udtree.VERB, udtree.Root, 0),
		tok(3, "que", udtree.SCONJ, udtree.Mark, 5),
		tok(4, "Maria", udtree.PROPN, udtree.Nsubj, 5),
		tok(5, "chegou", udtree.VERB, udtree.Ccomp, 2),
	)
	cfg := DefaultConfig()
	cfg.SubordinatingConjunctions = true
	set := Extract(sent, cfg)
	items := set.Items()
	assert.Len(t, items, 1)
	top := items[0]
	assert.Equal(t, "Ele", Render(top.Subject))
	assert.Equal(t, "disse", Render(top.Relation))
	assert.Equal(t, "que", Render(top.Complement))
	assert.Len(t, top.SubExtractions, 1)
	nested := top.SubExtractions[0]
	assert.Equal(t, "Maria", Render(nested.Subject))
	assert.Equal(t, "chegou", Render(nested.Relation))
}

// TestExtract_RelativeClauseAntecedent covers "O homem que chegou comprou
// carros." - the relative pronoun's subject resolves to its antecedent,
// and the relative clause itself stands as its own independent predicate
// alongside the main one (spec.md §8 scenario 6).
func TestExtract_RelativeClauseAntecedent(t *testing.T) {
	sent := mustSentence(t, "s6",
		tok(1, "O", udtree.DET, udtree.Det, 2),
		tok(2, "homem", udtree.NOUN, udtree.Nsubj, 6),
		tokF(3, "que", udtree.PRON, udtree.Nsubj, 4, udtree.Feats{"PronType": "Rel"}),
		tok(4, "chegou", udtree.VERB, udtree.AclRelcl, 2),
		tok(5, "carros", udtree.NOUN, udtree.Obj, 6),
		tok(6, "comprou", udtree.VERB, udtree.Root, 0),
	)
	set := Extract(sent, DefaultConfig())
	got := renderAll(set.Items())
	assert.Contains(t, got, "(O homem; comprou; carros)")
	assert.Contains(t, got, "(O homem; chegou; )")
	assert.Len(t, got, 2)
}

// TestExtract_RelativeClausePredicateNominal covers spec.md §8 scenario 6
// literally: "O homem que comprou o carro é rico." - the relcl verb
// "comprou" yields its own extraction via the antecedent, and the main
// copula predicate yields its own.
func TestExtract_RelativeClausePredicateNominal(t *testing.T) {
	sent := mustSentence(t, "s6b",
		tok(1, "O", udtree.DET, udtree.Det, 2),
		tok(2, "homem", udtree.NOUN, udtree.Nsubj, 8),
		tokF(3, "que", udtree.PRON, udtree.Nsubj, 4, udtree.Feats{"PronType": "Rel"}),
		tok(4, "comprou", udtree.VERB, udtree.AclRelcl, 2),
		tok(5, "o", udtree.DET, udtree.Det, 6),
		tok(6, "carro", udtree.NOUN, udtree.Obj, 4),
		tok(7, "é", udtree.AUX, udtree.Cop, 8),
		tok(8, "rico", udtree.ADJ, udtree.Root, 0),
	)
	set := Extract(sent, DefaultConfig())
	got := renderAll(set.Items())
	assert.Contains(t, got, "(O homem; comprou; o carro)")
	assert.Contains(t, got, "(O homem; é; rico)")
	assert.Len(t, got, 2)
}

// TestExtract_AppositiveIsASynthesis covers "Maria, a professora, chegou."
// with appositive synthesis enabled.
func TestExtract_AppositiveIsASynthesis(t *testing.T) {
	sent := mustSentence(t, "s7",
		tok(1, "Maria", udtree.PROPN, udtree.Nsubj, 5),
		tok(2, ",", udtree.PUNCT, udtree.Punct, 4),
		tok(3, "a", udtree.DET, udtree.Det, 4),
		tok(4, "professora", udtree.NOUN, udtree.Appos, 1),
		tok(5, "chegou", udtree.VERB, udtree.Root, 0),
	)
	cfg := DefaultConfig()
	cfg.Appositive = true
	set := Extract(sent, cfg)
	got := renderAll(set.Items())
	assert.Contains(t, got, "(Maria; chegou; )")
	assert.Contains(t, got, "(Maria; é; a professora)")
}

// TestExtract_HiddenSubjectImpersonalVerb covers an impersonal "Chove."
// sentence, valid only when HiddenSubjects is on.
func TestExtract_HiddenSubjectImpersonalVerb(t *testing.T) {
	sent := mustSentence(t, "s8",
		tokF(1, "chove", udtree.VERB, udtree.Root, 0, udtree.Feats{"Person": "3"}),
	)

	set := Extract(sent, DefaultConfig())
	assert.Empty(t, set.Items(), "an impersonal verb yields nothing unless HiddenSubjects is enabled")

	cfg := DefaultConfig()
	cfg.HiddenSubjects = true
	setHidden := Extract(sent, cfg)
	assert.Equal(t, []string{"(; chove; )"}, renderAll(setHidden.Items()))
}

// TestExtract_NoVerbalRootYieldsNothing covers a verbless fragment (e.g. a
// title or a malformed root) producing no extraction at all.
func TestExtract_NoVerbalRootYieldsNothing(t *testing.T) {
	sent := mustSentence(t, "s9",
		tok(1, "Capítulo", udtree.NOUN, udtree.Root, 0),
		tok(2, "Um", udtree.NUM, udtree.Nummod, 1),
	)
	set := Extract(sent, DefaultConfig())
	assert.Empty(t, set.Items())
}
