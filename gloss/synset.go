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

package gloss

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-wordnet"
)

// Raw gloss and gloss categories.
const (
	// CategoryOrig is the original gloss as found in the WordNet database.
	CategoryOrig = "orig"

	// CategoryText is the gloss text with markup removed.
	CategoryText = "text"

	// CategoryWSD is the sense-tagged gloss.
	CategoryWSD = "wsd"

	// CategoryDef is a definition segment of the sense-tagged gloss.
	CategoryDef = "def"

	// CategoryEx is an example segment of the sense-tagged gloss.
	CategoryEx = "ex"
)

// RawGloss is an unprocessed gloss string.
type RawGloss struct {
	Category string
	Text     string
}

// String returns a description of the raw gloss.
func (r RawGloss) String() string {
	return fmt.Sprintf("[gloss-%s] %s", r.Category, r.Text)
}

// Synset is a synset from the gloss corpus.
type Synset struct {
	*wordnet.Synset

	raw     []RawGloss
	glosses []*Gloss
}

// Collection is a collection of gloss corpus synsets.
type Collection = wordnet.Collection[*Synset]

// NewCollection returns an empty collection of gloss corpus synsets.
func NewCollection() *Collection {
	return wordnet.NewCollection[*Synset]()
}

// NewSynset returns a new empty synset.
func NewSynset(id wordnet.SynsetID) *Synset {
	return Wrap(wordnet.NewSynset(id))
}

// Wrap returns a gloss corpus synset backed by s.
func Wrap(s *wordnet.Synset) *Synset {
	return &Synset{Synset: s}
}

// AddRawGloss adds a raw gloss. The category and text are trimmed.
func (s *Synset) AddRawGloss(category, text string) {
	s.raw = append(s.raw, RawGloss{
		Category: strings.TrimSpace(category),
		Text:     strings.TrimSpace(text),
	})
}

// RawGlosses returns the raw glosses in the order they were added. The
// returned slice must not be modified.
func (s *Synset) RawGlosses() []RawGloss {
	return s.raw
}

// RawGloss returns the text of the first raw gloss with the given category.
func (s *Synset) RawGloss(category string) (text string, ok bool) {
	for _, r := range s.raw {
		if r.Category == category {
			return r.Text, true
		}
	}
	return "", false
}

// OrigGloss returns the text of the first "orig" raw gloss or an empty
// string.
func (s *Synset) OrigGloss() string {
	text, _ := s.RawGloss(CategoryOrig)
	return text
}

// AddGloss creates a new structured gloss owned by the synset and returns
// it. id is the gloss's numeric identifier in its backing store.
func (s *Synset) AddGloss(origID, category string, id int) *Gloss {
	g := &Gloss{
		id:       id,
		origID:   strings.TrimSpace(origID),
		category: strings.TrimSpace(category),
		synsetID: s.ID(),
	}
	s.glosses = append(s.glosses, g)
	return g
}

// Glosses returns the structured glosses in the order they were added. The
// returned slice must not be modified.
func (s *Synset) Glosses() []*Gloss {
	return s.glosses
}

// GramWords returns the gram words of every gloss in order.
func (s *Synset) GramWords(nopunc bool) []string {
	var words []string
	for _, g := range s.glosses {
		words = append(words, g.GramWords(nopunc)...)
	}
	return words
}

// Tags returns the sense keys tagged in every gloss in order.
func (s *Synset) Tags() []string {
	var keys []string
	for _, g := range s.glosses {
		keys = append(keys, g.TaggedSenseKeys()...)
	}
	return keys
}

// String returns the synset ID and canonical lemma.
func (s *Synset) String() string {
	if lemma, ok := s.Lemma(); ok {
		return fmt.Sprintf("%v (%s)", s.ID(), lemma)
	}
	return fmt.Sprintf("(GSynset:%v)", s.ID())
}
