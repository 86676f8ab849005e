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

import "strings"

// Feats is a token's UD morphological feature map (column FEATS of a
// CoNLL-U row, e.g. "PronType=Rel|Number=Sing").
type Feats map[string]string

// ParseFeats decodes the pipe-separated "Key=Value" CoNLL-U FEATS column.
// A bare "_" (no features) yields an empty, non-nil map.
func ParseFeats(raw string) Feats {
	f := make(Feats)
	if raw == "" || raw == "_" {
		return f
	}
	for _, pair := range strings.Split(raw, "|") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		f[k] = v
	}
	return f
}

// Has reports whether feature key is present with the given value.
func (f Feats) Has(key, value string) bool {
	return f[key] == value
}

// IsRelativePronoun reports the relative-pronoun test: PronType=Rel on
// the feature map.
func (f Feats) IsRelativePronoun() bool {
	return f.Has("PronType", "Rel")
}

func (f Feats) Person() string {
	return f["Person"]
}

func (f Feats) Number() string {
	return f["Number"]
}
