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
	"fmt"
	"iter"
	"slices"
)

// Collection is an insertion ordered collection of synsets indexed by
// synset ID and by sense key. The collection owns the synsets added to it;
// callers receive shared pointers.
//
// The zero value is an empty collection ready to use. A Collection is not
// safe for concurrent mutation.
type Collection[S Entry] struct {
	synsets []S
	bySID   map[SynsetID]S
	bySK    map[string]S
}

// SynsetCollection is a collection of plain synsets.
type SynsetCollection = Collection[*Synset]

// NewCollection returns a new empty collection.
func NewCollection[S Entry]() *Collection[S] {
	return &Collection[S]{
		bySID: map[SynsetID]S{},
		bySK:  map[string]S{},
	}
}

// NewSynsetCollection returns a new empty collection of plain synsets.
func NewSynsetCollection() *SynsetCollection {
	return NewCollection[*Synset]()
}

// Add adds a synset to the collection and indexes it by ID and by each of
// its sense keys. Adding a synset whose ID or sense key is already indexed
// replaces the indexed synset. s must not be nil. Add returns c to allow
// chaining.
func (c *Collection[S]) Add(s S) *Collection[S] {
	if c.bySID == nil {
		c.bySID = map[SynsetID]S{}
	}
	if c.bySK == nil {
		c.bySK = map[string]S{}
	}

	core := s.Core()
	c.synsets = append(c.synsets, s)
	c.bySID[core.ID()] = s
	for _, key := range core.Keys() {
		c.bySK[key] = s
	}
	return c
}

// BySID returns the synset with the given ID. ok is false if there is no
// such synset.
func (c *Collection[S]) BySID(id SynsetID) (s S, ok bool) {
	s, ok = c.bySID[id]
	return s, ok
}

// BySIDString is like BySID but takes the ID in any supported encoding.
// Strings that cannot be parsed are never found.
func (c *Collection[S]) BySIDString(sid string) (s S, ok bool) {
	id, err := Parse(sid)
	if err != nil {
		return s, false
	}
	return c.BySID(id)
}

// BySK returns the synset with the given sense key. ok is false if there is
// no such synset.
func (c *Collection[S]) BySK(key string) (s S, ok bool) {
	s, ok = c.bySK[key]
	return s, ok
}

// Len returns the number of calls to Add. Re-adding an ID counts again,
// so Len may exceed the number of distinct IDs.
func (c *Collection[S]) Len() int {
	return len(c.synsets)
}

// At returns the i-th synset in insertion order. It panics if i is out of
// range.
func (c *Collection[S]) At(i int) S {
	return c.synsets[i]
}

// All returns an iterator over the synsets in insertion order. It yields
// every added synset, including ones replaced by a later Add of the same
// ID.
func (c *Collection[S]) All() iter.Seq[S] {
	return slices.Values(c.synsets)
}

// Synsets returns a copy of the synsets in insertion order, one per Add.
func (c *Collection[S]) Synsets() []S {
	return slices.Clone(c.synsets)
}

// Merge adds every synset of other to c. Synsets in other win over
// synsets in c with the same ID or sense key. other is not modified. Merge
// returns c to allow chaining.
func (c *Collection[S]) Merge(other *Collection[S]) *Collection[S] {
	if other == nil {
		return c
	}
	// Take the length first so that merging a collection into itself
	// terminates.
	n := len(other.synsets)
	for i := 0; i < n; i++ {
		c.Add(other.synsets[i])
	}
	return c
}

// MarshalJSON implements json.Marshaler. The collection is encoded as an
// array of synsets.
func (c *Collection[S]) MarshalJSON() ([]byte, error) {
	synsets := c.synsets
	if synsets == nil {
		synsets = []S{}
	}
	b, err := json.Marshal(synsets)
	if err != nil {
		return nil, fmt.Errorf("encoding synset collection: %w", err)
	}
	return b, nil
}

// String returns a short description of the collection's synsets.
func (c *Collection[S]) String() string {
	ids := make([]string, 0, len(c.synsets))
	for _, s := range c.synsets {
		ids = append(ids, s.Core().ID().String())
	}
	return fmt.Sprint(ids)
}
