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

package wordnet_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet"
)

func newSynset(t *testing.T, id string, keys ...string) *wordnet.Synset {
	t.Helper()

	s := wordnet.NewSynset(wordnet.MustParse(id))
	for _, k := range keys {
		s.AddKey(k)
	}
	return s
}

func TestCollection_BySID(t *testing.T) {
	t.Parallel()

	const n = 20
	c := wordnet.NewSynsetCollection()
	for i := 0; i < n; i++ {
		c.Add(newSynset(t, fmt.Sprintf("%08d-n", i+1)))
	}

	if want, got := n, c.Len(); want != got {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
	for i := 0; i < n; i++ {
		offset := fmt.Sprintf("%08d", i+1)
		s, ok := c.BySIDString("n" + offset)
		if !ok {
			t.Fatalf("BySIDString(%q): not found", "n"+offset)
		}
		if want, got := offset, s.ID().Offset(); want != got {
			t.Fatalf("BySIDString: want offset %q, got %q", want, got)
		}
		if _, ok := c.BySIDString("1" + offset); !ok {
			t.Fatalf("BySIDString(%q): not found", "1"+offset)
		}
	}

	for _, missing := range []string{"00000021-n", "00000001-v", "garbage", ""} {
		if s, ok := c.BySIDString(missing); ok || s != nil {
			t.Fatalf("BySIDString(%q): want absent, got %v", missing, s)
		}
	}
	if s, ok := c.BySID(wordnet.SynsetID{}); ok || s != nil {
		t.Fatalf("BySID(zero): want absent, got %v", s)
	}
}

func TestCollection_BySK(t *testing.T) {
	t.Parallel()

	first := newSynset(t, "01775535-v", "prefer%2:31:00::", "favor%2:31:00::")
	second := newSynset(t, "01776000-v", "favor%2:31:00::")

	var c wordnet.SynsetCollection
	c.Add(first).Add(second)

	if s, ok := c.BySK("prefer%2:31:00::"); !ok || s != first {
		t.Fatalf("BySK: want %v, got %v", first, s)
	}
	// Last writer wins.
	if s, ok := c.BySK("favor%2:31:00::"); !ok || s != second {
		t.Fatalf("BySK: want %v, got %v", second, s)
	}
	if s, ok := c.BySK("missing%1:00:00::"); ok || s != nil {
		t.Fatalf("BySK: want absent, got %v", s)
	}
}

func TestCollection_Merge(t *testing.T) {
	t.Parallel()

	a := wordnet.NewSynsetCollection()
	onlyA := newSynset(t, "00000001-n", "a%1:00:00::")
	sharedA := newSynset(t, "00000002-n", "shared%1:00:00::")
	a.Add(onlyA).Add(sharedA)

	b := wordnet.NewSynsetCollection()
	sharedB := newSynset(t, "n00000002", "shared%1:00:00::")
	onlyB := newSynset(t, "00000003-n", "b%1:00:00::")
	b.Add(sharedB).Add(onlyB)

	a.Merge(b)

	if s, _ := a.BySIDString("00000002-n"); s != sharedB {
		t.Fatalf("merged entry: want synset from other collection, got %p", s)
	}
	if s, _ := a.BySK("shared%1:00:00::"); s != sharedB {
		t.Fatalf("merged key: want synset from other collection, got %p", s)
	}
	if s, _ := a.BySIDString("00000001-n"); s != onlyA {
		t.Fatal("unrelated entry of receiver lost")
	}
	if s, _ := a.BySIDString("00000003-n"); s != onlyB {
		t.Fatal("unrelated entry of other collection missing")
	}

	// other is untouched.
	if want, got := 2, b.Len(); want != got {
		t.Fatalf("other Len: want %d, got %d", want, got)
	}
	if _, ok := b.BySIDString("00000001-n"); ok {
		t.Fatal("other collection was modified")
	}

	// Self merge terminates.
	b.Merge(b)
	if want, got := 4, b.Len(); want != got {
		t.Fatalf("self merge Len: want %d, got %d", want, got)
	}
}

func TestCollection_order(t *testing.T) {
	t.Parallel()

	ids := []string{"00000009-n", "00000001-v", "00000005-a"}
	c := wordnet.NewSynsetCollection()
	for _, id := range ids {
		c.Add(newSynset(t, id))
	}

	var got []string
	for s := range c.All() {
		got = append(got, s.ID().String())
	}
	if diff := cmp.Diff(ids, got); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}
	if want, got := ids[2], c.At(2).ID().String(); want != got {
		t.Fatalf("At: want %q, got %q", want, got)
	}

	synsets := c.Synsets()
	synsets[0] = nil
	if c.At(0) == nil {
		t.Fatal("Synsets: returned slice aliases the collection")
	}
}

func TestCollection_MarshalJSON(t *testing.T) {
	t.Parallel()

	c := wordnet.NewSynsetCollection()
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if diff := cmp.Diff("[]", string(b)); diff != "" {
		t.Fatalf("MarshalJSON (-want, +got):\n%s", diff)
	}

	s := newSynset(t, "00002684-n")
	s.AddLemma("object")
	c.Add(s)
	b, err = json.Marshal(c)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if want, got := "00002684-n", got[0]["synsetid"]; want != got {
		t.Fatalf("synsetid: want %q, got %v", want, got)
	}
}

func TestCollection_readd(t *testing.T) {
	t.Parallel()

	first := newSynset(t, "00000002-n", "first%1:00:00::")
	second := newSynset(t, "n00000002", "second%1:00:00::")

	c := wordnet.NewSynsetCollection()
	c.Add(first).Add(second)

	// Len and All count every Add, not distinct IDs.
	if want, got := 2, c.Len(); want != got {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
	var all []*wordnet.Synset
	for s := range c.All() {
		all = append(all, s)
	}
	if len(all) != 2 || all[0] != first || all[1] != second {
		t.Fatalf("All: want both synsets in insertion order, got %v", all)
	}

	if s, _ := c.BySIDString("00000002-n"); s != second {
		t.Fatalf("BySID: want latest synset, got %p", s)
	}
}
