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
	"strings"

	"github.com/czcorpus/ptoie/udtree"
)

var bracketPairs = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// sanitizedTokens trims a token span down to its surface-rendering form
// and returns the surviving tokens in order: drop a matching outer bracket
// pair, then trim leading punctuation/cc, then trim trailing punctuation.
func sanitizedTokens(tokens []*udtree.Token) []*udtree.Token {
	if len(tokens) == 0 {
		return tokens
	}
	out := make([]*udtree.Token, len(tokens))
	copy(out, tokens)

	if len(out) >= 2 {
		first, last := out[0], out[len(out)-1]
		if close, ok := bracketPairs[first.Text]; ok && last.Text == close {
			out = out[1 : len(out)-1]
		}
	}

	for len(out) > 0 {
		t := out[0]
		_, isOpenBracket := bracketPairs[t.Text]
		if (t.PoS.Raw == udtree.PosPUNCT && !isOpenBracket) || t.Deprel.Is(udtree.Cc) {
			out = out[1:]
			continue
		}
		break
	}

	for len(out) > 0 {
		t := out[len(out)-1]
		isCloseBracket := false
		for _, c := range bracketPairs {
			if c == t.Text {
				isCloseBracket = true
				break
			}
		}
		if t.PoS.Raw == udtree.PosPUNCT && !isCloseBracket {
			out = out[:len(out)-1]
			continue
		}
		break
	}
	return out
}

// Render produces the canonical surface string of a TripleElement: the
// sanitized, sentence-ordered token span joined by single spaces, except
// that a clitic (expl:pv) is fused to the preceding token with a hyphen
// and no surrounding space.
func Render(e TripleElement) string {
	if e.IsSynthetic() {
		return e.synthetic.Text
	}
	tokens := sanitizedTokens(e.Tokens())
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for i, t := range tokens {
		if i == 0 {
			b.WriteString(t.Text)
			continue
		}
		if t.Deprel.Is(udtree.ExplPv) {
			b.WriteString("-")
			b.WriteString(t.Text)
			continue
		}
		b.WriteString(" ")
		b.WriteString(t.Text)
	}
	return b.String()
}
