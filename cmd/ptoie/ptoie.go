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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/ptoie/batch"
	"github.com/czcorpus/ptoie/conllu"
	"github.com/czcorpus/ptoie/extract"
	"github.com/czcorpus/ptoie/render"
	"github.com/rs/zerolog/log"
)

func main() {
	format := flag.String("format", "text", "output format: text, table or json")
	logLevel := flag.String("log-level", "info", "set log level (debug, info, warn, error)")
	concurrency := flag.Int("concurrency", 1, "number of sentences processed in parallel")
	coordConj := flag.Bool("coordinating-conjunctions", false, "split coordinated complements into decomposed extractions")
	subordConj := flag.Bool("subordinating-conjunctions", false, "emit nested sub-extractions for subordinate clauses")
	hiddenSubj := flag.Bool("hidden-subjects", false, "allow extractions with an empty (elided/impersonal) subject")
	appositive := flag.Bool("appositive", false, "synthesize is-a extractions from appositive constructions")
	appositiveTrans := flag.Bool("appositive-transitivity", false, "infer transitive is-a extractions (requires -appositive)")
	includeSource := flag.Bool("include-source", false, "include the provenance field in JSON output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ptoie - open information extraction over Portuguese UD v2 trees\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n  %s [options] [conllu_path|-]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logging.SetupLogging(logging.LoggingConf{
		Level: logging.LogLevel(*logLevel),
	})

	cfg := extract.DefaultConfig()
	cfg.CoordinatingConjunctions = *coordConj
	cfg.SubordinatingConjunctions = *subordConj
	cfg.HiddenSubjects = *hiddenSubj
	cfg.Appositive = *appositive
	cfg.AppositiveTransitivity = *appositiveTrans

	path := flag.Arg(0)
	var in io.Reader
	if path == "" || path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: ", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	sentences, parseErrs := conllu.ParseSentences(in)
	for _, err := range parseErrs {
		log.Warn().Err(err).Msg("skipped a CoNLL-U block")
	}

	results := batch.Run(sentences, cfg, *concurrency)

	var out []render.SentenceResult
	for _, r := range results {
		if r.Err != nil {
			log.Error().Err(r.Err).Str("sentId", r.Sentence.ID).Msg("extraction failed for sentence")
			continue
		}
		out = append(out, render.SentenceResult{
			SentenceID:  r.Sentence.ID,
			Text:        r.Sentence.Text,
			Extractions: r.Extractions.Items(),
		})
	}

	switch *format {
	case "json":
		if err := render.Structured(os.Stdout, out, *includeSource); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: ", err)
			os.Exit(1)
		}
	case "table":
		render.Tabular(out)
	default:
		if err := render.PlainText(os.Stdout, out); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: ", err)
			os.Exit(1)
		}
	}
}
