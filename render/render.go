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

// Package render formats extracted triples for a human or a downstream
// tool: structured (JSON), tabular, and plain-text.
package render

import "github.com/czcorpus/ptoie/extract"

// SentenceResult bundles one sentence's identity with the extractions
// found in it, the unit every renderer works from.
type SentenceResult struct {
	SentenceID  string
	Text        string
	Extractions []extract.Extraction
}

// tripleView is the JSON-facing projection of an extract.Extraction: the
// three rendered surface strings plus, optionally, provenance and nested
// sub-extractions.
type tripleView struct {
	Subject    string        `json:"subject"`
	Relation   string        `json:"relation"`
	Complement string        `json:"complement"`
	Source     string        `json:"source,omitempty"`
	Sub        []tripleView  `json:"sub,omitempty"`
}

func toView(e extract.Extraction, includeSource bool) tripleView {
	v := tripleView{
		Subject:    extract.Render(e.Subject),
		Relation:   extract.Render(e.Relation),
		Complement: extract.Render(e.Complement),
	}
	if includeSource {
		v.Source = string(e.Source)
	}
	for _, sub := range e.SubExtractions {
		v.Sub = append(v.Sub, toView(sub, includeSource))
	}
	return v
}
