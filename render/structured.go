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

package render

import (
	"encoding/json"
	"fmt"
	"io"
)

type sentenceView struct {
	SentenceID string       `json:"sentenceId,omitempty"`
	Text       string       `json:"text,omitempty"`
	Extractions []tripleView `json:"extractions"`
}

// Structured writes one JSON object per sentence, one per line.
// includeSource adds the provenance-tagging Source field to every
// extraction (subordinate/conjunction/appositive/transitivity/baseline).
func Structured(w io.Writer, results []SentenceResult, includeSource bool) error {
	for _, r := range results {
		sv := sentenceView{SentenceID: r.SentenceID, Text: r.Text}
		for _, e := range r.Extractions {
			sv.Extractions = append(sv.Extractions, toView(e, includeSource))
		}
		out, err := json.Marshal(sv)
		if err != nil {
			return fmt.Errorf("failed to json-encode sentence %q: %w", r.SentenceID, err)
		}
		if _, err := fmt.Fprintln(w, string(out)); err != nil {
			return err
		}
	}
	return nil
}
