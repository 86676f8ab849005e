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

import "github.com/czcorpus/ptoie/udtree"

// buildAppositiveExtractions synthesizes an "is-a" extraction for every
// appositive attachment: "X, Y, ..." becomes (X; é; Y). An appositive
// hanging off a token that is itself inside a subordinate complement
// (ccomp/xcomp) is skipped - it belongs to that clause's own extraction,
// not the outer sentence.
func buildAppositiveExtractions(sent *udtree.Sentence, cfg Config) []Extraction {
	if !cfg.Appositive {
		return nil
	}

	var out []Extraction
	for _, idx := range sent.AllIndices() {
		tk := sent.MustToken(idx)
		if !tk.Deprel.Is(udtree.Appos) {
			continue
		}
		head := tk.Head
		if head == 0 {
			continue
		}
		if sent.MustToken(head).Deprel.Is(udtree.Ccomp, udtree.Xcomp) {
			continue
		}
		out = append(out, synthesizeAppositive(sent, head, idx, SourceAppositive))
	}
	return out
}

// applyAppositiveTransitivity implements §4.6's transitivity inference: for
// every appositive extraction (A; é; B) and every clausal extraction
// (A'; R; C) whose subject matches A by surface-text equality, emit
// (B; R; C). It runs a single pass over the clausal extractions gathered
// before appositive synthesis - newly inferred extractions never feed back
// into another round.
func applyAppositiveTransitivity(appositives, clausal []Extraction) []Extraction {
	var out []Extraction
	for _, appo := range appositives {
		a := Render(appo.Subject)
		for _, cl := range clausal {
			if Render(cl.Subject) != a {
				continue
			}
			out = append(out, Extraction{
				Subject:        appo.Complement,
				Relation:       cl.Relation,
				Complement:     cl.Complement,
				SubExtractions: cl.SubExtractions,
				Source:         SourceTransitivity,
			})
		}
	}
	return out
}

func synthesizeAppositive(sent *udtree.Sentence, headIdx, apposIdx int, src ExtractionSource) Extraction {
	subject := nominalDFS(sent, headIdx, dfsOpts{ignoreAppos: true})
	complement := nominalDFS(sent, apposIdx, dfsOpts{})
	return Extraction{
		Subject:    subject,
		Relation:   SyntheticElement(sent, udtree.SyntheticCopula()),
		Complement: complement,
		Source:     src,
	}
}
