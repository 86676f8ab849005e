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

import "strings"

// Deprel is a closed UD v2 dependency relation, represented as a small
// uint16 code with the original readable label kept alongside it. Only
// the relations the extractor's rules actually inspect get a
// dedicated code; anything else keeps Raw == DeprelOther and its Readable
// string, so rendering and pass-through never lose information.
type Deprel struct {
	Readable string
	Raw      uint16
}

func (d Deprel) String() string {
	return d.Readable
}

func (d Deprel) IsValid() bool {
	return d.Raw != DeprelOther
}

func (d Deprel) Is(others ...Deprel) bool {
	for _, o := range others {
		if d.Raw == o.Raw && d.Raw != DeprelOther {
			return true
		}
		if d.Raw == DeprelOther && o.Raw == DeprelOther && d.Readable == o.Readable {
			return true
		}
	}
	return false
}

const (
	DeprelOther uint16 = iota
	DeprelAcl
	DeprelAclRelcl
	DeprelAdvcl
	DeprelAdvmod
	DeprelAmod
	DeprelAppos
	DeprelAux
	DeprelAuxPass
	DeprelCase
	DeprelCc
	DeprelCcomp
	DeprelConj
	DeprelCop
	DeprelCsubj
	DeprelCsubjPass
	DeprelDep
	DeprelDet
	DeprelExplPv
	DeprelFlat
	DeprelFlatName
	DeprelIobj
	DeprelMark
	DeprelNmod
	DeprelNsubj
	DeprelNsubjPass
	DeprelNummod
	DeprelObj
	DeprelObl
	DeprelPunct
	DeprelRoot
	DeprelXcomp
)

var (
	Acl        = Deprel{Readable: "acl", Raw: DeprelAcl}
	AclRelcl   = Deprel{Readable: "acl:relcl", Raw: DeprelAclRelcl}
	Advcl      = Deprel{Readable: "advcl", Raw: DeprelAdvcl}
	Advmod     = Deprel{Readable: "advmod", Raw: DeprelAdvmod}
	Amod       = Deprel{Readable: "amod", Raw: DeprelAmod}
	Appos      = Deprel{Readable: "appos", Raw: DeprelAppos}
	Aux        = Deprel{Readable: "aux", Raw: DeprelAux}
	AuxPass    = Deprel{Readable: "aux:pass", Raw: DeprelAuxPass}
	Case       = Deprel{Readable: "case", Raw: DeprelCase}
	Cc         = Deprel{Readable: "cc", Raw: DeprelCc}
	Ccomp      = Deprel{Readable: "ccomp", Raw: DeprelCcomp}
	Conj       = Deprel{Readable: "conj", Raw: DeprelConj}
	Cop        = Deprel{Readable: "cop", Raw: DeprelCop}
	Csubj      = Deprel{Readable: "csubj", Raw: DeprelCsubj}
	CsubjPass  = Deprel{Readable: "csubj:pass", Raw: DeprelCsubjPass}
	Dep        = Deprel{Readable: "dep", Raw: DeprelDep}
	Det        = Deprel{Readable: "det", Raw: DeprelDet}
	ExplPv     = Deprel{Readable: "expl:pv", Raw: DeprelExplPv}
	Flat       = Deprel{Readable: "flat", Raw: DeprelFlat}
	FlatName   = Deprel{Readable: "flat:name", Raw: DeprelFlatName}
	Iobj       = Deprel{Readable: "iobj", Raw: DeprelIobj}
	Mark       = Deprel{Readable: "mark", Raw: DeprelMark}
	Nmod       = Deprel{Readable: "nmod", Raw: DeprelNmod}
	Nsubj      = Deprel{Readable: "nsubj", Raw: DeprelNsubj}
	NsubjPass  = Deprel{Readable: "nsubj:pass", Raw: DeprelNsubjPass}
	Nummod     = Deprel{Readable: "nummod", Raw: DeprelNummod}
	Obj        = Deprel{Readable: "obj", Raw: DeprelObj}
	Obl        = Deprel{Readable: "obl", Raw: DeprelObl}
	Punct      = Deprel{Readable: "punct", Raw: DeprelPunct}
	Root       = Deprel{Readable: "root", Raw: DeprelRoot}
	Xcomp      = Deprel{Readable: "xcomp", Raw: DeprelXcomp}
)

// deprelMapping maps between string names of the deprels this engine
// cares about and their internal uint16 representation.
type deprelMapping struct {
	items map[string]uint16
}

func (dm deprelMapping) Get(key string) (uint16, bool) {
	v, ok := dm.items[key]
	return v, ok
}

func (dm deprelMapping) GetRev(val uint16) string {
	for k, v := range dm.items {
		if v == val {
			return k
		}
	}
	return ""
}

var UDDeprelMapping = deprelMapping{
	items: map[string]uint16{
		"acl":         DeprelAcl,
		"acl:relcl":   DeprelAclRelcl,
		"advcl":       DeprelAdvcl,
		"advmod":      DeprelAdvmod,
		"amod":        DeprelAmod,
		"appos":       DeprelAppos,
		"aux":         DeprelAux,
		"aux:pass":    DeprelAuxPass,
		"case":        DeprelCase,
		"cc":          DeprelCc,
		"ccomp":       DeprelCcomp,
		"conj":        DeprelConj,
		"cop":         DeprelCop,
		"csubj":       DeprelCsubj,
		"csubj:pass":  DeprelCsubjPass,
		"dep":         DeprelDep,
		"det":         DeprelDet,
		"expl:pv":     DeprelExplPv,
		"flat":        DeprelFlat,
		"flat:name":   DeprelFlatName,
		"iobj":        DeprelIobj,
		"mark":        DeprelMark,
		"nmod":        DeprelNmod,
		"nsubj":       DeprelNsubj,
		"nsubj:pass":  DeprelNsubjPass,
		"nummod":      DeprelNummod,
		"obj":         DeprelObj,
		"obl":         DeprelObl,
		"punct":       DeprelPunct,
		"root":        DeprelRoot,
		"xcomp":       DeprelXcomp,
	},
}

// ImportDeprel maps a raw DEPREL column value onto the closed set this
// engine reasons about. Anything outside that set is preserved verbatim
// via DeprelOther so the token can still be rendered and traversed (the
// nominal/complement DFS simply treats it as "not in my set").
func ImportDeprel(v string) Deprel {
	lower := strings.ToLower(v)
	repr, ok := UDDeprelMapping.Get(lower)
	if !ok {
		return Deprel{Raw: DeprelOther, Readable: v}
	}
	return Deprel{Raw: repr, Readable: v}
}

// ---- closed groupings ----

func inSet(d Deprel, set []Deprel) bool {
	for _, s := range set {
		if d.Raw != DeprelOther && d.Raw == s.Raw {
			return true
		}
	}
	return false
}

var SubjectDeps = []Deprel{Nsubj, NsubjPass, Csubj, CsubjPass}

func (d Deprel) IsSubject() bool { return inSet(d, SubjectDeps) }

var RelationVerbDeps = []Deprel{Aux, AuxPass, Xcomp}

func (d Deprel) IsRelationVerb() bool { return inSet(d, RelationVerbDeps) }

var RelationModifierDeps = []Deprel{ExplPv}

func (d Deprel) IsRelationModifier() bool { return inSet(d, RelationModifierDeps) }

var ComplementHeadDeps = []Deprel{Obj, Iobj, Xcomp, Obl, Advmod, Nmod, Root}

func (d Deprel) IsComplementHead() bool { return inSet(d, ComplementHeadDeps) }

var ComplementIgnoreDeps = []Deprel{Nsubj, NsubjPass, Csubj, CsubjPass}

func (d Deprel) IsComplementIgnore() bool { return inSet(d, ComplementIgnoreDeps) }

var ComplementBoundaryDeps = []Deprel{Mark}

func (d Deprel) IsComplementBoundary() bool { return inSet(d, ComplementBoundaryDeps) }

var NominalDFSDeps = []Deprel{Nummod, Advmod, Nmod, Amod, Dep, Det, Case, Flat, FlatName, Punct, Conj, Cc, Appos}

func (d Deprel) IsNominalDFS() bool { return inSet(d, NominalDFSDeps) }

var SubordinateClauseDeps = []Deprel{Ccomp, Advcl}

func (d Deprel) IsSubordinateClause() bool { return inSet(d, SubordinateClauseDeps) }
