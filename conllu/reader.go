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

package conllu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/czcorpus/ptoie/udtree"
	"github.com/rs/zerolog/log"
)

const maxLineSize = 1 << 20

// MalformedSentence reports a CoNLL-U block that was skipped: bad column
// count, a non-integer ID/HEAD, or a cyclic head chain.
type MalformedSentence struct {
	Block  int
	SentID string
	Reason string
}

func (e MalformedSentence) Error() string {
	if e.SentID != "" {
		return fmt.Sprintf("malformed sentence %s (block %d): %s", e.SentID, e.Block, e.Reason)
	}
	return fmt.Sprintf("malformed sentence (block %d): %s", e.Block, e.Reason)
}

// ParseSentences reads blank-line-delimited CoNLL-U blocks from r. A block
// that fails to parse is logged and skipped rather than aborting the whole
// read; its error is still reported back via the returned error slice so
// callers can surface it.
func ParseSentences(r io.Reader) ([]*udtree.Sentence, []error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var sentences []*udtree.Sentence
	var errs []error
	block := 0
	var lines []string
	var sentID, text string

	flush := func() {
		if len(lines) == 0 {
			return
		}
		block++
		sent, err := buildSentence(sentID, text, lines)
		if err != nil {
			log.Warn().Err(err).Int("block", block).Str("sentId", sentID).
				Msg("skipping malformed CoNLL-U block")
			errs = append(errs, MalformedSentence{Block: block, SentID: sentID, Reason: err.Error()})
		} else {
			sentences = append(sentences, sent)
		}
		lines = nil
		sentID, text = "", ""
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if v, ok := strings.CutPrefix(trimmed, "# sent_id ="); ok {
				sentID = strings.TrimSpace(v)
			} else if v, ok := strings.CutPrefix(trimmed, "# text ="); ok {
				text = strings.TrimSpace(v)
			}
			continue
		}
		lines = append(lines, line)
	}
	flush()
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	return sentences, errs
}

func buildSentence(sentID, text string, lines []string) (*udtree.Sentence, error) {
	tokens := make([]udtree.Token, 0, len(lines))
	for _, line := range lines {
		row, skip, err := parseRow(line)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		tokens = append(tokens, udtree.Token{
			Index:  row.ID,
			Text:   row.Form,
			Lemma:  row.Lemma,
			PoS:    udtree.ImportPOS(row.UPOS),
			Deprel: udtree.ImportDeprel(row.Deprel),
			Head:   row.Head,
			Feats:  udtree.ParseFeats(row.Feats),
		})
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("block has no data rows")
	}
	return udtree.NewSentence(sentID, text, tokens)
}
