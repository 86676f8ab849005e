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

// tok is a terse builder for one CoNLL-U-shaped token in a hand-built test
// tree: index, surface form, POS, deprel and head.
func tok(idx int, text string, pos udtree.POS, deprel udtree.Deprel, head int) udtree.Token {
	return udtree.Token{
		Index:  idx,
		Text:   text,
		Lemma:  text,
		PoS:    pos,
		Deprel: deprel,
		Head:   head,
		Feats:  udtree.Feats{},
	}
}

// tokF is tok with an explicit Feats map, for relative-pronoun/person tests.
func tokF(idx int, text string, pos udtree.POS, deprel udtree.Deprel, head int, feats udtree.Feats) udtree.Token {
	tk := tok(idx, text, pos, deprel, head)
	tk.Feats = feats
	return tk
}

func mustSentence(t *testing.T, id string, toks ...udtree.Token) *udtree.Sentence {
	t.Helper()
	sent, err := udtree.NewSentence(id, "", toks)
	assert.NoError(t, err)
	return sent
}

// renderAll maps a slice of Extraction to their rendered (subject; relation;
// complement) strings, ignoring sub-extractions - used for shallow
// assertions on the top-level set.
func renderAll(exts []Extraction) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		out = append(out, "("+Render(e.Subject)+"; "+Render(e.Relation)+"; "+Render(e.Complement)+")")
	}
	return out
}
