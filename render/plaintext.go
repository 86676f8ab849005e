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
	"fmt"
	"io"
	"strings"
)

// PlainText writes each extraction as an indented "(subject; relation;
// complement)" line, sub-extractions indented one level further under
// their parent.
func PlainText(w io.Writer, results []SentenceResult) error {
	for _, r := range results {
		if r.Text != "" {
			if _, err := fmt.Fprintln(w, r.Text); err != nil {
				return err
			}
		}
		for _, e := range r.Extractions {
			if err := writeTriple(w, toView(e, false), 0); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTriple(w io.Writer, v tripleView, depth int) error {
	indent := strings.Repeat("  ", depth)
	_, err := fmt.Fprintf(w, "%s(%s; %s; %s)\n", indent, v.Subject, v.Relation, v.Complement)
	if err != nil {
		return err
	}
	for _, sub := range v.Sub {
		if err := writeTriple(w, sub, depth+1); err != nil {
			return err
		}
	}
	return nil
}
