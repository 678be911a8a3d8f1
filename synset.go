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
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyLemma is returned when setting a synset's canonical lemma to an
// empty value.
var ErrEmptyLemma = errors.New("canonical lemma cannot be empty")

// Entry is implemented by Synset and by types that embed a *Synset, such as
// the sense-tagged synsets of the gloss package. It allows collections and
// helpers to work with either.
type Entry interface {
	// Core returns the underlying synset.
	Core() *Synset
}

// Synset is a group of synonymous word senses. Synsets are built
// incrementally by readers: lemmas, sense keys, definitions and examples are
// appended and never removed.
type Synset struct {
	id       SynsetID
	lemmas   []string
	keys     []string
	defs     []string
	examples []string
	tagCount int
}

// NewSynset returns a new empty synset.
func NewSynset(id SynsetID) *Synset {
	return &Synset{id: id}
}

// Core implements Entry.
func (s *Synset) Core() *Synset {
	return s
}

// ID returns the synset ID.
func (s *Synset) ID() SynsetID {
	return s.id
}

// Lemmas returns the synset's lemmas. The first lemma is the canonical lemma.
// The returned slice must not be modified.
func (s *Synset) Lemmas() []string {
	return s.lemmas
}

// Keys returns the synset's sense keys. The returned slice must not be
// modified.
func (s *Synset) Keys() []string {
	return s.keys
}

// Definitions returns the synset's definitions. The first definition is the
// primary definition. The returned slice must not be modified.
func (s *Synset) Definitions() []string {
	return s.defs
}

// Examples returns the synset's example sentences. The returned slice must
// not be modified.
func (s *Synset) Examples() []string {
	return s.examples
}

// TagCount returns the number of times the synset's senses were tagged in
// the sense-tagged corpus.
func (s *Synset) TagCount() int {
	return s.tagCount
}

// SetTagCount sets the synset's tag count.
func (s *Synset) SetTagCount(n int) {
	s.tagCount = n
}

// AddLemma appends a lemma.
func (s *Synset) AddLemma(lemma string) {
	s.lemmas = append(s.lemmas, lemma)
}

// AddKey appends a sense key.
func (s *Synset) AddKey(key string) {
	s.keys = append(s.keys, key)
}

// AddDefinition appends a definition.
func (s *Synset) AddDefinition(def string) {
	s.defs = append(s.defs, def)
}

// AddExample appends an example sentence.
func (s *Synset) AddExample(ex string) {
	s.examples = append(s.examples, ex)
}

// Definition returns the primary definition. ok is false if the synset has
// no definitions.
func (s *Synset) Definition() (def string, ok bool) {
	if len(s.defs) == 0 {
		return "", false
	}
	return s.defs[0], true
}

// SetDefinition sets the primary definition. If the synset has no
// definitions the definition is appended, otherwise the first definition is
// replaced.
func (s *Synset) SetDefinition(def string) {
	if len(s.defs) == 0 {
		s.defs = append(s.defs, def)
		return
	}
	s.defs[0] = def
}

// Lemma returns the canonical lemma. ok is false if the synset has no
// lemmas.
func (s *Synset) Lemma() (lemma string, ok bool) {
	if len(s.lemmas) == 0 {
		return "", false
	}
	return s.lemmas[0], true
}

// SetLemma sets the canonical lemma, replacing the first lemma if there is
// one. An empty lemma is rejected with ErrEmptyLemma and the synset is left
// unchanged.
func (s *Synset) SetLemma(lemma string) error {
	if lemma == "" {
		return fmt.Errorf("%w: synset %v", ErrEmptyLemma, s.id)
	}
	if len(s.lemmas) == 0 {
		s.lemmas = []string{lemma}
		return nil
	}
	s.lemmas[0] = lemma
	return nil
}

// Tokens returns all lemmas followed by the individual words of multi-word
// lemmas. Duplicates are removed keeping the first occurrence.
func (s *Synset) Tokens() []string {
	seen := make(map[string]bool, len(s.lemmas))
	var tokens []string
	add := func(t string) {
		if seen[t] {
			return
		}
		seen[t] = true
		tokens = append(tokens, t)
	}

	for _, l := range s.lemmas {
		add(l)
	}
	for _, l := range s.lemmas {
		if strings.Contains(l, " ") {
			for _, w := range strings.Fields(l) {
				add(w)
			}
		}
	}
	return tokens
}

// String returns a short description of the synset.
func (s *Synset) String() string {
	return fmt.Sprintf("(Synset:%v)", s.id)
}

// synsetJSON is the stable JSON shape of a synset.
type synsetJSON struct {
	SynsetID   SynsetID `json:"synsetid"`
	Definition *string  `json:"definition"`
	Lemmas     []string `json:"lemmas"`
	SenseKeys  []string `json:"sensekeys"`
	TagCount   int      `json:"tagcount"`
	Examples   []string `json:"examples"`
}

// MarshalJSON implements json.Marshaler. The definition is null when the
// synset has no definition and list fields are never null.
func (s *Synset) MarshalJSON() ([]byte, error) {
	v := synsetJSON{
		SynsetID:  s.id,
		Lemmas:    nonNil(s.lemmas),
		SenseKeys: nonNil(s.keys),
		TagCount:  s.tagCount,
		Examples:  nonNil(s.examples),
	}
	if def, ok := s.Definition(); ok {
		v.Definition = &def
	}
	//nolint:wrapcheck // error from encoding/json should not be wrapped.
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler for the shape produced by
// MarshalJSON.
func (s *Synset) UnmarshalJSON(b []byte) error {
	var v synsetJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decoding synset: %w", err)
	}
	*s = Synset{
		id:       v.SynsetID,
		lemmas:   v.Lemmas,
		keys:     v.SenseKeys,
		examples: v.Examples,
		tagCount: v.TagCount,
	}
	if v.Definition != nil {
		s.defs = []string{*v.Definition}
	}
	return nil
}

// ToJSON returns the synset as a generic JSON object with the same keys as
// MarshalJSON.
func (s *Synset) ToJSON() map[string]any {
	var def any
	if d, ok := s.Definition(); ok {
		def = d
	}
	return map[string]any{
		"synsetid":   s.id.Format(Canonical),
		"definition": def,
		"lemmas":     nonNil(s.lemmas),
		"sensekeys":  nonNil(s.keys),
		"tagcount":   s.tagCount,
		"examples":   nonNil(s.examples),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
