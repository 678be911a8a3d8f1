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

// TagFields holds the data of a sense tag as read from a backing store.
type TagFields struct {
	// TagID is the tag's numeric identifier in its backing store.
	TagID int

	// Category is the annotation category, e.g. "id" or "glob".
	Category string

	// Tag is the tagging status of a glob tag.
	Tag string

	// Glob, GlobLemma and GlobID describe a tag spanning several tokens.
	Glob      string
	GlobLemma string
	GlobID    string

	// Coll is the collocation reference.
	Coll string

	// OrigID is the tag's identifier in the gloss corpus.
	OrigID string

	// SID is the synset the tag resolves to. It is the zero SynsetID when
	// the tag has not been resolved.
	SID wordnet.SynsetID

	// SenseKey is the tagged sense key. It is empty for unresolved tags.
	SenseKey string

	// Lemma is the tagged lemma.
	Lemma string
}

func (f TagFields) trimmed() TagFields {
	f.Category = strings.TrimSpace(f.Category)
	f.Tag = strings.TrimSpace(f.Tag)
	f.Glob = strings.TrimSpace(f.Glob)
	f.GlobLemma = strings.TrimSpace(f.GlobLemma)
	f.GlobID = strings.TrimSpace(f.GlobID)
	f.Coll = strings.TrimSpace(f.Coll)
	f.OrigID = strings.TrimSpace(f.OrigID)
	f.SenseKey = strings.TrimSpace(f.SenseKey)
	f.Lemma = strings.TrimSpace(f.Lemma)
	return f
}

// SenseTag is a sense annotation attached to a gloss item.
type SenseTag struct {
	TagFields

	glossID int
	item    int
}

// GlossID returns the ID of the gloss that owns the tag.
func (t *SenseTag) GlossID() int {
	return t.glossID
}

// Item returns the position of the tagged item in its gloss.
func (t *SenseTag) Item() int {
	return t.item
}

// String returns the tagged lemma and sense key.
func (t *SenseTag) String() string {
	return fmt.Sprintf("%s (sk:%s)", t.Lemma, t.SenseKey)
}
