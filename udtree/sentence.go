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
	"fmt"
	"sort"

	"github.com/czcorpus/cnc-gokit/collections"
)

// Sentence is an immutable, index-addressed UD dependency tree for one
// sentence: a flat, slice-backed arena of Token records addressed by
// integer index rather than pointer, plus an index-based head pointer and
// a precomputed children-by-index table. Token.Index values are 1-based;
// index 0 denotes the virtual root parent. tokens[i] is valid iff its
// Index field equals i - a zero-value slot (Index 0) marks an unused
// index, which can occur when HEAD values skip ahead of the highest real
// token index.
type Sentence struct {
	ID       string
	Text     string
	tokens   []Token
	order    []int
	root     int
	children [][]int
}

// ErrCyclicTree is returned by NewSentence when the HEAD chain of the
// input tokens contains a cycle - a malformed CoNLL-U block.
type ErrCyclicTree struct {
	TokenIndex int
}

func (e ErrCyclicTree) Error() string {
	return fmt.Sprintf("cyclic dependency tree detected at token %d", e.TokenIndex)
}

// NewSentence builds an immutable Sentence from tokens in sentence order.
// It precomputes the children-by-index adjacency table once, and rejects
// input whose head chain contains a cycle (the core's DFS routines still
// keep their own visited-set guard).
func NewSentence(id, text string, tokens []Token) (*Sentence, error) {
	maxIdx := 0
	for _, tk := range tokens {
		if tk.Index > maxIdx {
			maxIdx = tk.Index
		}
		if tk.Head > maxIdx {
			maxIdx = tk.Head
		}
	}
	s := &Sentence{
		ID:       id,
		Text:     text,
		tokens:   make([]Token, maxIdx+1),
		order:    make([]int, 0, len(tokens)),
		children: make([][]int, maxIdx+1),
		root:     -1,
	}
	for i := range tokens {
		tk := tokens[i]
		s.tokens[tk.Index] = tk
		s.order = append(s.order, tk.Index)
		s.children[tk.Head] = append(s.children[tk.Head], tk.Index)
		if tk.Head == 0 || tk.Deprel.Raw == DeprelRoot {
			s.root = tk.Index
		}
	}
	sort.Ints(s.order)
	for _, idxs := range s.children {
		sort.Ints(idxs)
	}
	for _, idx := range s.order {
		if err := s.checkAcyclic(idx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Sentence) checkAcyclic(start int) error {
	seen := collections.NewSet[int]()
	cur := start
	for cur != 0 {
		if seen.Contains(cur) {
			return ErrCyclicTree{TokenIndex: start}
		}
		seen.Add(cur)
		tk, ok := s.Token(cur)
		if !ok {
			return nil
		}
		cur = tk.Head
	}
	return nil
}

// Len returns the number of tokens in the sentence.
func (s *Sentence) Len() int {
	return len(s.order)
}

// Token returns the token at the given 1-based index, or false if it does
// not belong to this sentence.
func (s *Sentence) Token(idx int) (*Token, bool) {
	if idx <= 0 || idx >= len(s.tokens) || s.tokens[idx].Index != idx {
		return nil, false
	}
	return &s.tokens[idx], true
}

// MustToken panics if idx is not in this Sentence - used internally once
// an index is already known to have been validated.
func (s *Sentence) MustToken(idx int) *Token {
	tk, ok := s.Token(idx)
	if !ok {
		panic(fmt.Sprintf("InternalInvariant: token %d not in its own sentence", idx))
	}
	return tk
}

// Root returns the root token of the sentence tree, if any.
func (s *Sentence) Root() (*Token, bool) {
	if s.root < 0 {
		return nil, false
	}
	return s.Token(s.root)
}

// Children returns the child token indices of idx, sorted by sentence
// index.
func (s *Sentence) Children(idx int) []int {
	if idx < 0 || idx >= len(s.children) {
		return nil
	}
	return s.children[idx]
}

// ChildrenWithDeprel returns, in sentence order, the children of idx whose
// Deprel matches dep.
func (s *Sentence) ChildrenWithDeprel(idx int, dep Deprel) []int {
	var out []int
	for _, c := range s.Children(idx) {
		if s.tokens[c].Deprel.Is(dep) {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildWithDeprel returns the first (smallest-index) child of idx
// whose dependency relation is one of deps, used by the subject finder's
// tie-break rule.
func (s *Sentence) FirstChildWithDeprel(idx int, deps []Deprel) (int, bool) {
	for _, c := range s.Children(idx) {
		for _, d := range deps {
			if s.tokens[c].Deprel.Is(d) {
				return c, true
			}
		}
	}
	return 0, false
}

// Tokens returns all tokens in sentence order.
func (s *Sentence) Tokens() []*Token {
	out := make([]*Token, 0, len(s.order))
	for _, idx := range s.order {
		out = append(out, &s.tokens[idx])
	}
	return out
}

// AllIndices returns all token indices in sentence order.
func (s *Sentence) AllIndices() []int {
	return s.order
}
