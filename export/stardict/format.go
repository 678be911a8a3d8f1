// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stardict

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ianlewis/go-wordnet"
)

const ifoMagic = "StarDict's dict ifo file"

// ifoVersion is the format version written to the .ifo file. Offsets are
// 32 bits wide in this version.
const ifoVersion = "2.4.2"

// sameTypeSequence marks every article as plain UTF-8 text.
const sameTypeSequence = "m"

// idxEntry is an .idx file entry.
type idxEntry struct {
	word   string
	offset uint32
	size   uint32
}

// synEntry is a .syn file entry. index is the position of the headword's
// entry in the .idx file.
type synEntry struct {
	word  string
	index uint32
}

// encodeIdx encodes an .idx file. Each entry is the word, a zero byte and
// the big-endian article offset and size.
func encodeIdx(entries []idxEntry) []byte {
	var b []byte
	for _, e := range entries {
		b = append(b, e.word...)
		b = append(b, 0)
		b = binary.BigEndian.AppendUint32(b, e.offset)
		b = binary.BigEndian.AppendUint32(b, e.size)
	}
	return b
}

// encodeSyn encodes a .syn file. Each entry is the word, a zero byte and the
// big-endian .idx entry index.
func encodeSyn(entries []synEntry) []byte {
	var b []byte
	for _, e := range entries {
		b = append(b, e.word...)
		b = append(b, 0)
		b = binary.BigEndian.AppendUint32(b, e.index)
	}
	return b
}

type ifo struct {
	bookname     string
	wordcount    int
	synwordcount int
	idxfilesize  int64
	author       string
	email        string
	website      string
	description  string
}

// encodeIfo encodes an .ifo file. Empty optional values are omitted.
func encodeIfo(i ifo) []byte {
	var b strings.Builder
	b.WriteString(ifoMagic + "\n")

	line := func(key, value string) {
		value = strings.Join(strings.Fields(value), " ")
		if value != "" {
			fmt.Fprintf(&b, "%s=%s\n", key, value)
		}
	}
	line("version", ifoVersion)
	line("bookname", i.bookname)
	line("wordcount", fmt.Sprint(i.wordcount))
	if i.synwordcount > 0 {
		line("synwordcount", fmt.Sprint(i.synwordcount))
	}
	line("idxfilesize", fmt.Sprint(i.idxfilesize))
	line("author", i.author)
	line("email", i.email)
	line("website", i.website)
	line("description", i.description)
	line("sametypesequence", sameTypeSequence)
	return []byte(b.String())
}

// compareWords orders words the way StarDict does: ASCII letters are
// compared case-insensitively and ties are broken by a byte-wise comparison.
func compareWords(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := asciiLower(a[i]), asciiLower(b[i])
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Article renders the plain text article for a synset.
func Article(s *wordnet.Synset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", s.ID(), s.ID().POS())
	for _, def := range s.Definitions() {
		b.WriteString(def + "\n")
	}
	if lemmas := s.Lemmas(); len(lemmas) > 1 {
		b.WriteString("Synonyms: " + strings.Join(lemmas, ", ") + "\n")
	}
	for _, ex := range s.Examples() {
		fmt.Fprintf(&b, "  %q\n", ex)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
