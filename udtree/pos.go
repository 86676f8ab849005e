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

const (
	PosADJ   = 0x01
	PosADP   = 0x02
	PosADV   = 0x03
	PosAUX   = 0x04
	PosCCONJ = 0x05
	PosDET   = 0x06
	PosINTJ  = 0x07
	PosNOUN  = 0x08
	PosNUM   = 0x09
	PosPRON  = 0x0a
	PosPROPN = 0x0b
	PosPUNCT = 0x0c
	PosSCONJ = 0x0d
	PosSYM   = 0x0e
	PosVERB  = 0x0f
	PosX     = 0x10
	PosPART  = 0x11
)

// POS is a closed UD v2 coarse part-of-speech tag, represented as a small
// byte code with the original readable string kept alongside it for
// lossless round-trip (an unrecognized tag keeps Raw == 0 and Readable
// set to whatever the input carried).
type POS struct {
	Readable string
	Raw      byte
}

func (p POS) String() string {
	return p.Readable
}

func (p POS) IsValid() bool {
	return p.Raw >= 0x01 && p.Raw <= 0x11
}

func (p POS) Is(others ...POS) bool {
	for _, o := range others {
		if p.Raw == o.Raw {
			return true
		}
	}
	return false
}

// IsVerbal reports whether the tag is VERB or AUX - the two tags the
// relation builder requires at least one of.
func (p POS) IsVerbal() bool {
	return p.Raw == PosVERB || p.Raw == PosAUX
}

var (
	ADJ   = POS{Readable: "ADJ", Raw: PosADJ}
	ADP   = POS{Readable: "ADP", Raw: PosADP}
	ADV   = POS{Readable: "ADV", Raw: PosADV}
	AUX   = POS{Readable: "AUX", Raw: PosAUX}
	CCONJ = POS{Readable: "CCONJ", Raw: PosCCONJ}
	DET   = POS{Readable: "DET", Raw: PosDET}
	INTJ  = POS{Readable: "INTJ", Raw: PosINTJ}
	NOUN  = POS{Readable: "NOUN", Raw: PosNOUN}
	NUM   = POS{Readable: "NUM", Raw: PosNUM}
	PRON  = POS{Readable: "PRON", Raw: PosPRON}
	PROPN = POS{Readable: "PROPN", Raw: PosPROPN}
	PUNCT = POS{Readable: "PUNCT", Raw: PosPUNCT}
	SCONJ = POS{Readable: "SCONJ", Raw: PosSCONJ}
	SYM   = POS{Readable: "SYM", Raw: PosSYM}
	VERB  = POS{Readable: "VERB", Raw: PosVERB}
	X     = POS{Readable: "X", Raw: PosX}
	PART  = POS{Readable: "PART", Raw: PosPART}
)

type posMapping map[string]byte

func (pm posMapping) GetRev(val byte) string {
	for k, v := range pm {
		if v == val {
			return k
		}
	}
	return ""
}

var UDPoSMapping = posMapping{
	"ADJ":   PosADJ,
	"ADP":   PosADP,
	"ADV":   PosADV,
	"AUX":   PosAUX,
	"CCONJ": PosCCONJ,
	"DET":   PosDET,
	"INTJ":  PosINTJ,
	"NOUN":  PosNOUN,
	"NUM":   PosNUM,
	"PRON":  PosPRON,
	"PROPN": PosPROPN,
	"PUNCT": PosPUNCT,
	"SCONJ": PosSCONJ,
	"SYM":   PosSYM,
	"VERB":  PosVERB,
	"X":     PosX,
	"PART":  PosPART,
}

// ImportPOS maps a raw UPOS string from a CoNLL-U column onto the closed
// POS set, keeping the original string for unrecognized values.
func ImportPOS(v string) POS {
	repr, ok := UDPoSMapping[strings.ToUpper(v)]
	if !ok {
		return POS{Raw: 0x00, Readable: v}
	}
	return POS{Raw: repr, Readable: v}
}
