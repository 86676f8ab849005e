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

package udtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_IsPunct(t *testing.T) {
	assert.True(t, Token{PoS: PUNCT}.IsPunct())
	assert.False(t, Token{PoS: NOUN}.IsPunct())
}

func TestToken_IsRelativePronoun(t *testing.T) {
	assert.True(t, Token{PoS: PRON, Feats: Feats{"PronType": "Rel"}}.IsRelativePronoun())
	assert.True(t, Token{PoS: SCONJ, Feats: Feats{"PronType": "Rel"}}.IsRelativePronoun())
	assert.False(t, Token{PoS: PRON, Feats: Feats{"PronType": "Dem"}}.IsRelativePronoun())
	assert.False(t, Token{PoS: NOUN, Feats: Feats{"PronType": "Rel"}}.IsRelativePronoun())
}

func TestSyntheticCopula(t *testing.T) {
	tok := SyntheticCopula()
	assert.True(t, tok.Synthetic)
	assert.Equal(t, "é", tok.Text)
	assert.Equal(t, Cop.Raw, tok.Deprel.Raw)
	assert.Equal(t, AUX.Raw, tok.PoS.Raw)
}
