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
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/internal/folding"
)

// ErrForeignItem is returned when an item that was not created by a gloss is
// passed to one of its methods.
var ErrForeignItem = errors.New("item does not belong to gloss")

// Gloss is a tokenized, sense-tagged gloss. Items can only be appended, in
// document order, with AddItem which assigns their position.
type Gloss struct {
	id       int
	origID   string
	category string
	synsetID wordnet.SynsetID

	items  []*Item
	tags   []*SenseTag
	groups []*Group
}

// ID returns the gloss's numeric identifier.
func (g *Gloss) ID() int {
	return g.id
}

// OrigID returns the gloss's identifier in the gloss corpus.
func (g *Gloss) OrigID() string {
	return g.origID
}

// Category returns the gloss category (e.g. "def" or "ex").
func (g *Gloss) Category() string {
	return g.category
}

// SynsetID returns the ID of the synset that owns the gloss.
func (g *Gloss) SynsetID() wordnet.SynsetID {
	return g.synsetID
}

// Len returns the number of items.
func (g *Gloss) Len() int {
	return len(g.items)
}

// Items returns the items in document order. The returned slice must not be
// modified.
func (g *Gloss) Items() []*Item {
	return g.items
}

// Item returns the item at position i.
func (g *Gloss) Item(i int) (*Item, bool) {
	if i < 0 || i >= len(g.items) {
		return nil, false
	}
	return g.items[i], true
}

// AddItem appends a new item and returns it. The item's position is the
// number of items already in the gloss. All string fields are trimmed.
func (g *Gloss) AddItem(f ItemFields) *Item {
	item := &Item{
		ItemFields: f.trimmed(),
		order:      len(g.items),
		glossID:    g.id,
	}
	g.items = append(g.items, item)
	return item
}

// owns returns whether item was created by g.
func (g *Gloss) owns(item *Item) bool {
	return item != nil && item.order < len(g.items) && g.items[item.order] == item
}

// TagItem attaches a new sense tag to item and returns it. item must have
// been returned by g.AddItem.
func (g *Gloss) TagItem(item *Item, f TagFields) (*SenseTag, error) {
	if !g.owns(item) {
		return nil, fmt.Errorf("%w: tagging gloss %d", ErrForeignItem, g.id)
	}
	tag := &SenseTag{
		TagFields: f.trimmed(),
		glossID:   g.id,
		item:      item.order,
	}
	g.tags = append(g.tags, tag)
	return tag, nil
}

// Tags returns all sense tags in the order they were attached. The returned
// slice must not be modified.
func (g *Gloss) Tags() []*SenseTag {
	return g.tags
}

// ItemTags returns the sense tags attached to item.
func (g *Gloss) ItemTags(item *Item) []*SenseTag {
	if !g.owns(item) {
		return nil
	}
	var tags []*SenseTag
	for _, t := range g.tags {
		if t.item == item.order {
			tags = append(tags, t)
		}
	}
	return tags
}

// AddGroup creates a new empty group and returns it.
func (g *Gloss) AddGroup(label string) *Group {
	grp := &Group{Label: strings.TrimSpace(label)}
	g.groups = append(g.groups, grp)
	return grp
}

// AddToGroup adds items to grp. Every item must have been returned by
// g.AddItem; nothing is added otherwise.
func (g *Gloss) AddToGroup(grp *Group, items ...*Item) error {
	for _, item := range items {
		if !g.owns(item) {
			return fmt.Errorf("%w: grouping %q in gloss %d", ErrForeignItem, grp.Label, g.id)
		}
	}
	for _, item := range items {
		grp.items = append(grp.items, item.order)
	}
	return nil
}

// Groups returns the groups in the order they were created. The returned
// slice must not be modified.
func (g *Gloss) Groups() []*Group {
	return g.groups
}

// GroupItems resolves the items of grp.
func (g *Gloss) GroupItems(grp *Group) []*Item {
	var items []*Item
	for _, i := range grp.items {
		if item, ok := g.Item(i); ok {
			items = append(items, item)
		}
	}
	return items
}

// Text reconstructs the gloss text by joining the surface form of each item
// with a single space. Items whose surface form starts with a semicolon are
// joined without the preceding space. Items without a surface form are
// skipped.
func (g *Gloss) Text() string {
	var b strings.Builder
	for _, item := range g.items {
		s := item.Surface()
		if s == "" {
			continue
		}
		if b.Len() > 0 && !attachesLeft(s) {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}
	return b.String()
}

// attachesLeft returns whether a token consumes the space before it.
func attachesLeft(s string) bool {
	return strings.HasPrefix(s, ";")
}

// EquivalentText reports whether two gloss texts are equal once whitespace is
// folded and the joining rule of Text is applied to both.
func EquivalentText(a, b string) bool {
	return normalizeText(a) == normalizeText(b)
}

func normalizeText(s string) string {
	return strings.ReplaceAll(folding.Spaces(s), " ;", ";")
}

// TaggedSenseKeys returns the sense keys of the gloss's tags, skipping tags
// without a sense key.
func (g *Gloss) TaggedSenseKeys() []string {
	var keys []string
	for _, t := range g.tags {
		if t.SenseKey != "" {
			keys = append(keys, t.SenseKey)
		}
	}
	return keys
}

// GramWords returns the gram words of each item in item order. Unlike
// Synset.Tokens the result is not de-duplicated.
func (g *Gloss) GramWords(nopunc bool) []string {
	var words []string
	for _, item := range g.items {
		words = append(words, item.GramWords(nopunc)...)
	}
	return words
}

// String returns a description of the gloss including its text.
func (g *Gloss) String() string {
	return fmt.Sprintf("{Gloss('%s'|'%s') %s}", g.origID, g.category, g.Text())
}
