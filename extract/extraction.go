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

	"github.com/czcorpus/cnc-gokit/collections"
)

// ExtractionSource names which rule produced an Extraction. It is metadata
// only - it plays no part in validity, dedup, or rendering.
type ExtractionSource string

const (
	SourceBaseline     ExtractionSource = "baseline"
	SourceConjunction  ExtractionSource = "conjunction"
	SourceSubordinate  ExtractionSource = "subordinate"
	SourceAppositive   ExtractionSource = "appositive"
	SourceTransitivity ExtractionSource = "transitivity"
)

// Extraction is a proposition (subject; relation; complement), possibly
// wrapping nested sub-extractions for subordinate clauses.
type Extraction struct {
	Subject        TripleElement
	Relation       TripleElement
	Complement     TripleElement
	SubExtractions []Extraction
	Source         ExtractionSource
}

// IsValid applies the validation rule: a subject-less, relation-less
// extraction passes only by carrying at least one valid sub-extraction;
// otherwise subject and relation must both be present (subject may be
// empty only when hidden subjects are enabled), the relation must be
// synthetic or contain a verb/aux, and the subject must not be a bare
// relative pronoun.
func (e Extraction) IsValid(cfg Config) bool {
	if e.Subject.IsEmpty() && e.Relation.IsEmpty() {
		if countValid(e.SubExtractions, cfg) >= 1 {
			return true
		}
	}
	if e.Subject.IsEmpty() && !cfg.HiddenSubjects {
		return false
	}
	if e.Relation.IsEmpty() {
		return false
	}
	if !e.Relation.IsSynthetic() && !e.Relation.ContainsVerbOrAux() {
		return false
	}
	if e.Subject.IsSingleRelativePronoun() {
		return false
	}
	return true
}

func countValid(exts []Extraction, cfg Config) int {
	n := 0
	for _, e := range exts {
		if e.IsValid(cfg) {
			n++
		}
	}
	return n
}

// TupleForm is the canonical equality key for deduplication: sanitized
// subject/relation/complement strings plus the ordered tuple forms of the
// sub-extractions.
func (e Extraction) TupleForm() string {
	var b strings.Builder
	b.WriteString(Render(e.Subject))
	b.WriteByte('\x1f')
	b.WriteString(Render(e.Relation))
	b.WriteByte('\x1f')
	b.WriteString(Render(e.Complement))
	for _, sub := range e.SubExtractions {
		b.WriteByte('\x1e')
		b.WriteString(sub.TupleForm())
	}
	return b.String()
}

// ExtractionSet is a deduplicated collection of Extractions, keyed by
// TupleForm, preserving first-seen order for deterministic rendering.
type ExtractionSet struct {
	seen  *collections.Set[string]
	items []Extraction
}

func NewExtractionSet() *ExtractionSet {
	return &ExtractionSet{seen: collections.NewSet[string]()}
}

// Add inserts e unless its TupleForm is already present; the first
// occurrence wins.
func (s *ExtractionSet) Add(e Extraction) bool {
	key := e.TupleForm()
	if s.seen.Contains(key) {
		return false
	}
	s.seen.Add(key)
	s.items = append(s.items, e)
	return true
}

func (s *ExtractionSet) Contains(key string) bool {
	return s.seen.Contains(key)
}

// Items returns the deduplicated extractions in insertion order.
func (s *ExtractionSet) Items() []Extraction {
	return s.items
}

func (s *ExtractionSet) Len() int {
	return len(s.items)
}
