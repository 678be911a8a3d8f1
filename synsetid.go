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
	"regexp"
)

// ErrInvalidFormat indicates that a string is not a synset ID in any of the
// supported encodings.
var ErrInvalidFormat = errors.New("invalid synset id format")

// Format is a textual encoding of a SynsetID.
type Format int

const (
	// Canonical is the OFFSET-POS encoding, e.g. 01775535-v.
	Canonical Format = iota

	// WNSQL is the WordNet SQL encoding, e.g. 201775535. The leading digit is
	// the part of speech number.
	WNSQL

	// GlossWN is the Gloss WordNet encoding, e.g. v01775535.
	GlossWN
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case Canonical:
		return "canonical"
	case WNSQL:
		return "wnsql"
	case GlossWN:
		return "glosswn"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// The patterns are deliberately wider than the valid part of speech
// alphabet so that a bad part of speech is reported as such.
var (
	wnsqlPattern     = regexp.MustCompile(`^([0-9])([0-9]{8})$`)
	canonicalPattern = regexp.MustCompile(`^([0-9]{8})-?([a-z])$`)
	glossWNPattern   = regexp.MustCompile(`^([a-z])([0-9]{8})$`)
	offsetPattern    = regexp.MustCompile(`^[0-9]{8}$`)
)

// FormatError is returned when a synset ID cannot be parsed. It matches
// ErrInvalidFormat with errors.Is, as well as the more specific cause (e.g.
// ErrInvalidPOS) when there is one.
type FormatError struct {
	// Input is the offending string.
	Input string

	// Err is the specific cause, if any.
	Err error
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v (provided: %q): %v", ErrInvalidFormat, e.Input, e.Err)
	}
	return fmt.Sprintf("%v (provided: %q)", ErrInvalidFormat, e.Input)
}

// Unwrap returns ErrInvalidFormat and the specific cause.
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidFormat}
	}
	return []error{ErrInvalidFormat, e.Err}
}

// SynsetID identifies a synset by its offset and part of speech. SynsetID is
// comparable: two IDs parsed from different encodings of the same synset are
// equal and can be used interchangeably as map keys.
//
// The zero SynsetID is not a valid ID and is used to mean "no synset".
type SynsetID struct {
	offset string
	pos    POS
}

// NewSynsetID returns a SynsetID from an eight digit offset and a part of
// speech.
func NewSynsetID(offset string, pos POS) (SynsetID, error) {
	if !offsetPattern.MatchString(offset) {
		return SynsetID{}, &FormatError{Input: offset + "-" + pos.String()}
	}
	if !pos.Valid() {
		return SynsetID{}, &FormatError{
			Input: offset + "-" + pos.String(),
			Err:   ErrInvalidPOS,
		}
	}
	return SynsetID{offset: offset, pos: pos}, nil
}

// Parse parses a synset ID in any of the supported encodings. The WordNet
// SQL encoding is tried first, then the canonical encoding and finally the
// Gloss WordNet encoding. The whole string must match.
func Parse(s string) (SynsetID, error) {
	if m := wnsqlPattern.FindStringSubmatch(s); m != nil {
		pos, err := POSFromNum(m[1][0])
		if err != nil {
			return SynsetID{}, &FormatError{Input: s, Err: ErrInvalidPOS}
		}
		return SynsetID{offset: m[2], pos: pos}, nil
	}

	var offset, pos string
	if m := canonicalPattern.FindStringSubmatch(s); m != nil {
		offset, pos = m[1], m[2]
	} else if m := glossWNPattern.FindStringSubmatch(s); m != nil {
		pos, offset = m[1], m[2]
	} else {
		return SynsetID{}, &FormatError{Input: s}
	}

	p := POS(pos[0])
	if !p.Valid() {
		return SynsetID{}, &FormatError{Input: s, Err: ErrInvalidPOS}
	}
	return SynsetID{offset: offset, pos: p}, nil
}

// MustParse is like Parse but panics if s cannot be parsed. It is intended
// for IDs that are known to be valid such as constants in tests.
func MustParse(s string) SynsetID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Offset returns the zero padded eight digit synset offset.
func (id SynsetID) Offset() string {
	return id.offset
}

// POS returns the synset part of speech.
func (id SynsetID) POS() POS {
	return id.pos
}

// IsZero returns true for the zero SynsetID.
func (id SynsetID) IsZero() bool {
	return id == SynsetID{}
}

// Format renders the ID in the given encoding. The zero SynsetID and
// unknown formats render as an empty string.
func (id SynsetID) Format(f Format) string {
	if id.IsZero() {
		return ""
	}
	switch f {
	case Canonical:
		return id.offset + "-" + id.pos.String()
	case WNSQL:
		return string(id.pos.Num()) + id.offset
	case GlossWN:
		return id.pos.String() + id.offset
	default:
		return ""
	}
}

// String returns the canonical encoding of the ID.
func (id SynsetID) String() string {
	return id.Format(Canonical)
}

// Equal reports whether s, in any supported encoding, denotes the same
// synset as id. Strings that cannot be parsed are never equal.
func (id SynsetID) Equal(s string) bool {
	other, err := Parse(s)
	if err != nil {
		return false
	}
	return id == other
}

// MarshalText implements encoding.TextMarshaler using the canonical
// encoding.
func (id SynsetID) MarshalText() ([]byte, error) {
	return []byte(id.Format(Canonical)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any supported encoding
// is accepted.
func (id *SynsetID) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*id = SynsetID{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
