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

package wordnet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPOS indicates a part of speech symbol outside of the six WordNet
// parts of speech.
var ErrInvalidPOS = errors.New("invalid part of speech")

// POS is a WordNet part of speech. Its value is the single letter used in the
// canonical and gloss corpus synset ID encodings.
type POS byte

const (
	// Noun is the noun part of speech.
	Noun = POS('n')

	// Verb is the verb part of speech.
	Verb = POS('v')

	// Adjective is the (head) adjective part of speech.
	Adjective = POS('a')

	// Adverb is the adverb part of speech.
	Adverb = POS('r')

	// AdjectiveSatellite is the satellite adjective part of speech.
	AdjectiveSatellite = POS('s')

	// Extra is used by some extended wordnets for extra synsets.
	Extra = POS('x')
)

// posLetters is ordered by the WordNet SQL part of speech number. The number
// of a POS is its index in posLetters plus one.
const posLetters = "nvarsx"

// ParsePOS parses a part of speech from its letter ("n") or WordNet SQL
// number ("1").
func ParsePOS(s string) (POS, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPOS, s)
	}
	if '1' <= s[0] && s[0] <= '6' {
		return POSFromNum(s[0])
	}
	p := POS(s[0])
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPOS, s)
	}
	return p, nil
}

// POSFromNum returns the part of speech for a WordNet SQL part of speech
// digit ('1' through '6').
func POSFromNum(num byte) (POS, error) {
	if num < '1' || num > '6' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPOS, string(num))
	}
	return POS(posLetters[num-'1']), nil
}

// Valid returns whether p is one of the six WordNet parts of speech.
func (p POS) Valid() bool {
	return p != 0 && strings.IndexByte(posLetters, byte(p)) >= 0
}

// Num returns the WordNet SQL digit for p, or zero if p is invalid.
func (p POS) Num() byte {
	i := strings.IndexByte(posLetters, byte(p))
	if p == 0 || i < 0 {
		return 0
	}
	return byte('1' + i)
}

// String returns the part of speech letter.
func (p POS) String() string {
	if p == 0 {
		return ""
	}
	return string(rune(p))
}
