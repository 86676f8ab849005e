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

// Package batch drives the extractor over many sentences, isolating each
// sentence's failures from the rest of the run.
package batch

import (
	"fmt"
	"sync"

	"github.com/czcorpus/ptoie/extract"
	"github.com/czcorpus/ptoie/udtree"
	"github.com/rs/zerolog/log"
)

// Result is one sentence's outcome: either a populated ExtractionSet or a
// non-nil Err if the core panicked on it.
type Result struct {
	Sentence    *udtree.Sentence
	Extractions *extract.ExtractionSet
	Err         error
}

// Run extracts every sentence under cfg. concurrency <= 1 processes them
// sequentially; concurrency > 1 fans them out over a bounded worker pool,
// safe because the core holds no shared mutable state across sentences.
func Run(sentences []*udtree.Sentence, cfg extract.Config, concurrency int) []Result {
	if concurrency <= 1 {
		out := make([]Result, len(sentences))
		for i, s := range sentences {
			out[i] = runOne(s, cfg)
		}
		return out
	}

	out := make([]Result, len(sentences))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for i, s := range sentences {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s *udtree.Sentence) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = runOne(s, cfg)
		}(i, s)
	}
	wg.Wait()
	return out
}

// runOne recovers a panic from the core exactly once, converting an
// InternalInvariant violation into a Result.Err instead of letting it
// escape the sentence boundary.
func runOne(sent *udtree.Sentence, cfg extract.Config) (res Result) {
	res.Sentence = sent
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("sentId", sent.ID).
				Msg("core extraction panicked, skipping sentence")
			res.Err = fmt.Errorf("internal invariant violation: %v", r)
		}
	}()
	res.Extractions = extract.Extract(sent, cfg)
	return res
}
