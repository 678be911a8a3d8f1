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
)

// Item categories used by the gloss corpus.
const (
	// ItemWord is an ordinary word form.
	ItemWord = "wf"

	// ItemCollocation is a member of a (possibly discontinuous)
	// collocation.
	ItemCollocation = "cf"

	// ItemPunctuation is a punctuation mark.
	ItemPunctuation = "punc"
)

// ItemFields holds the data of a gloss item as read from a backing store.
type ItemFields struct {
	// ItemID is the item's numeric identifier in its backing store.
	ItemID int

	// OrigID is the item's identifier in the gloss corpus.
	OrigID string

	// Tag is the tagging status (e.g. "man", "auto", "un", "ignore").
	Tag string

	// Lemma is the sense-annotated lemma, e.g. "prefer%2|preferred%3".
	Lemma string

	// POS is the part of speech tag.
	POS string

	// Category is the token category, e.g. ItemWord or ItemPunctuation.
	Category string

	// Coll is the collocation reference(s) of a collocation member.
	Coll string

	// RDF is the auxiliary relation reference.
	RDF string

	// Sep is the separator attribute.
	Sep string

	// Text is the literal token text.
	Text string
}

func (f ItemFields) trimmed() ItemFields {
	f.OrigID = strings.TrimSpace(f.OrigID)
	f.Tag = strings.TrimSpace(f.Tag)
	f.Lemma = strings.TrimSpace(f.Lemma)
	f.POS = strings.TrimSpace(f.POS)
	f.Category = strings.TrimSpace(f.Category)
	f.Coll = strings.TrimSpace(f.Coll)
	f.RDF = strings.TrimSpace(f.RDF)
	f.Sep = strings.TrimSpace(f.Sep)
	f.Text = strings.TrimSpace(f.Text)
	return f
}

// Item is a token of a gloss.
type Item struct {
	ItemFields

	order   int
	glossID int
}

// Order returns the zero-based position of the item in its gloss.
func (i *Item) Order() int {
	return i.order
}

// GlossID returns the ID of the gloss that owns the item.
func (i *Item) GlossID() int {
	return i.glossID
}

// IsPunctuation returns whether the item is a punctuation mark.
func (i *Item) IsPunctuation() bool {
	return i.Category == ItemPunctuation
}

// Surface returns the item's text, or its lemma if it has no text.
func (i *Item) Surface() string {
	if i.Text != "" {
		return i.Text
	}
	return i.Lemma
}

// GramWords returns the distinct lemma roots of the item's lemma: the lemma
// is split on "|" and everything from "%" onward is dropped, so
// "prefer%2|preferred%3" yields "prefer" and "preferred". If nopunc is true
// punctuation items yield nothing.
func (i *Item) GramWords(nopunc bool) []string {
	if nopunc && i.IsPunctuation() {
		return nil
	}
	if i.Lemma == "" {
		return nil
	}

	var words []string
	seen := map[string]bool{}
	for _, alt := range strings.Split(i.Lemma, "|") {
		root, _, _ := strings.Cut(alt, "%")
		if root == "" || seen[root] {
			continue
		}
		seen[root] = true
		words = append(words, root)
	}
	return words
}

// String returns a description of the item.
func (i *Item) String() string {
	return fmt.Sprintf("(itemid: %d | id:%s | tag:%s | lemma:%s | pos:%s | cat:%s | coll:%s | rdf: %s | sep:%s | text:%s)",
		i.ItemID, i.OrigID, i.Tag, i.Lemma, i.POS, i.Category, i.Coll, i.RDF, i.Sep, i.Text)
}
