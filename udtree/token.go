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

import "fmt"

// Token is the atomic unit of a parsed sentence. Index is
// 1-based within its Sentence; Head is 0 for the sentence root. Tokens are
// immutable once a Sentence has been constructed.
type Token struct {
	Index   int
	Text    string
	Lemma   string
	PoS     POS
	Deprel  Deprel
	Head    int
	Feats   Feats

	// Synthetic marks a token injected by the extractor itself (the
	// appositive "é" copula) rather than one that came from the parsed
	// sentence.
	Synthetic bool
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d:%s/%s/%s)", t.Index, t.Text, t.PoS, t.Deprel)
}

func (t Token) IsPunct() bool {
	return t.PoS.Raw == PosPUNCT
}

// IsRelativePronoun reports a PRON or SCONJ carrying PronType=Rel.
func (t Token) IsRelativePronoun() bool {
	return (t.PoS.Raw == PosPRON || t.PoS.Raw == PosSCONJ) && t.Feats.IsRelativePronoun()
}

// SyntheticCopula builds the injected "é" relation token the appositive
// module attaches as a synthetic TripleElement core.
func SyntheticCopula() Token {
	return Token{
		Text:      "é",
		Lemma:     "ser",
		PoS:       AUX,
		Deprel:    Cop,
		Synthetic: true,
	}
}
