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

// Package conllu parses CoNLL-U v2 text into udtree.Sentence values.
package conllu

import (
	"fmt"
	"strconv"
	"strings"
)

// Row mirrors one tab-separated CoNLL-U data line: ID FORM LEMMA UPOS XPOS
// FEATS HEAD DEPREL DEPS MISC.
type Row struct {
	ID     int
	Form   string
	Lemma  string
	UPOS   string
	XPOS   string
	Feats  string
	Head   int
	Deprel string
	Deps   string
	Misc   string
}

// parseRow splits and validates a single data line. skip is true for
// multiword-token ranges ("3-4") and empty nodes ("3.1"), neither of
// which carries a HEAD and neither of which belongs in the dependency
// tree; callers should drop such lines rather than treat them as errors.
func parseRow(line string) (row Row, skip bool, err error) {
	cols := strings.Split(line, "\t")
	if len(cols) != 10 {
		return Row{}, false, fmt.Errorf("expected 10 columns, got %d", len(cols))
	}
	if strings.ContainsAny(cols[0], "-.") {
		return Row{}, true, nil
	}
	id, err := strconv.Atoi(cols[0])
	if err != nil {
		return Row{}, false, fmt.Errorf("invalid ID column %q: %w", cols[0], err)
	}
	head, err := strconv.Atoi(cols[6])
	if err != nil {
		return Row{}, false, fmt.Errorf("invalid HEAD column %q: %w", cols[6], err)
	}
	return Row{
		ID:     id,
		Form:   cols[1],
		Lemma:  cols[2],
		UPOS:   cols[3],
		XPOS:   cols[4],
		Feats:  cols[5],
		Head:   head,
		Deprel: cols[7],
		Deps:   cols[8],
		Misc:   cols[9],
	}, false, nil
}
