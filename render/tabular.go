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

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// Tabular prints one table per sentence, sub-extractions nested under
// their parent with a "1.1"-style hierarchical id.
func Tabular(results []SentenceResult) {
	headerFmt := color.New(color.FgGreen).SprintfFunc()
	columnFmt := color.New(color.FgHiMagenta).SprintfFunc()

	for _, r := range results {
		if r.SentenceID != "" {
			fmt.Printf("\n# %s\n", r.SentenceID)
		}
		if len(r.Extractions) == 0 {
			fmt.Println("-- NO EXTRACTIONS --")
			continue
		}

		tbl := table.New("id", "subject", "relation", "complement")
		tbl.WithHeaderFormatter(headerFmt).
			WithFirstColumnFormatter(columnFmt).
			WithHeaderSeparatorRow('═')

		var addRows func(id string, v tripleView)
		addRows = func(id string, v tripleView) {
			tbl.AddRow(id, v.Subject, v.Relation, v.Complement)
			for i, sub := range v.Sub {
				addRows(fmt.Sprintf("%s.%d", id, i+1), sub)
			}
		}
		for i, e := range r.Extractions {
			addRows(fmt.Sprintf("%d", i+1), toView(e, false))
		}
		tbl.Print()
	}
}
