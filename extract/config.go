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

// Config is the plain boolean record controlling which extraction modules
// run. It is passed by value through the traversal and is
// never thread-local nor global (Design Note 9).
type Config struct {
	// CoordinatingConjunctions enables C7 verb-coordination splitting and
	// multi-complement decomposition.
	CoordinatingConjunctions bool

	// SubordinatingConjunctions enables sub-extraction emission for
	// ccomp/advcl heads carrying an explicit subject.
	SubordinatingConjunctions bool

	// HiddenSubjects permits empty-subject extractions for impersonal or
	// elided predicates. Reserved: the subject is left empty, no antecedent
	// synthesis is attempted.
	HiddenSubjects bool

	// Appositive enables C6 appositive synthesis.
	Appositive bool

	// AppositiveTransitivity enables the single-pass transitivity
	// inference over appositive extractions. Requires Appositive.
	AppositiveTransitivity bool

	// Debug is carried in the record but read by no code path: it turns
	// on no tracing and has no effect on outputs.
	Debug bool

	// ExistentialVerbLemmas overrides the closed lemma set that triggers
	// object-as-subject promotion for existential constructions
	//. Defaults to {"haver","ocorrer","existir"}.
	ExistentialVerbLemmas []string

	// RelationAdverbLemmas overrides the closed lemma set of adverbs the
	// relation builder folds into the verbal nucleus.
	// Defaults to {"não","já","ainda","também","nunca"}.
	RelationAdverbLemmas []string
}

var defaultExistentialVerbLemmas = []string{"haver", "ocorrer", "existir"}

var defaultRelationAdverbLemmas = []string{"não", "já", "ainda", "também", "nunca"}

// DefaultConfig returns the baseline configuration with every extraction
// module disabled.
func DefaultConfig() Config {
	return Config{
		ExistentialVerbLemmas: defaultExistentialVerbLemmas,
		RelationAdverbLemmas:  defaultRelationAdverbLemmas,
	}
}

func (c Config) existentialLemmas() []string {
	if c.ExistentialVerbLemmas != nil {
		return c.ExistentialVerbLemmas
	}
	return defaultExistentialVerbLemmas
}

func (c Config) relationAdverbLemmas() []string {
	if c.RelationAdverbLemmas != nil {
		return c.RelationAdverbLemmas
	}
	return defaultRelationAdverbLemmas
}

func (c Config) isExistentialVerb(lemma string) bool {
	for _, l := range c.existentialLemmas() {
		if l == lemma {
			return true
		}
	}
	return false
}

func (c Config) isRelationAdverb(lemma string) bool {
	for _, l := range c.relationAdverbLemmas() {
		if l == lemma {
			return true
		}
	}
	return false
}
