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

// conjunctVerbPeers finds predicates coordinated with head at the top
// level, e.g. "Ele compra e vende carros.": a conj child that is itself
// verbal (VERB/AUX) and carries no subject of its own is taken to share
// head's subject, so it gets processed as its own predicate producing a
// separate extraction.
func conjunctVerbPeers(sent *udtree.Sentence, head int) []int {
	var peers []int
	for _, c := range sent.ChildrenWithDeprel(head, udtree.Conj) {
		tk := sent.MustToken(c)
		if !tk.PoS.IsVerbal() {
			continue
		}
		if _, ok := sent.FirstChildWithDeprel(c, udtree.SubjectDeps); ok {
			continue
		}
		peers = append(peers, c)
	}
	return peers
}
