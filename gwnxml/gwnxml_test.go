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

package gwnxml_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/gloss"
	"github.com/ianlewis/go-wordnet/gwnxml"
	"github.com/ianlewis/go-wordnet/internal/testutil"
)

func surfaces(items []*gloss.Item) []string {
	var got []string
	for _, item := range items {
		got = append(got, item.Surface())
	}
	return got
}

func TestReadFiles(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{".xml", ".xml.gz", ".xml.dz"} {
		t.Run(ext, func(t *testing.T) {
			t.Parallel()

			c, err := gwnxml.ReadFiles([]string{testutil.MakeGlossXML(t, ext)}, nil)
			if err != nil {
				t.Fatalf("ReadFiles: %v", err)
			}

			var got []string
			for s := range c.All() {
				got = append(got, s.ID().Format(wordnet.GlossWN))
			}
			if diff := cmp.Diff([]string{"n00791078", "v00918872"}, got); diff != "" {
				t.Fatalf("synsets (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestReadFiles_missing(t *testing.T) {
	t.Parallel()

	if _, err := gwnxml.ReadFiles([]string{"testdata/missing.xml"}, nil); err == nil {
		t.Fatalf("ReadFiles: expected error")
	}
}

func readTestCollection(t *testing.T) *gloss.Collection {
	t.Helper()

	c, err := gwnxml.ReadFiles([]string{testutil.MakeGlossXML(t, ".xml")}, nil)
	if err != nil {
		t.Fatalf("ReadFiles: %v", err)
	}
	return c
}

func TestReader_synset(t *testing.T) {
	t.Parallel()

	c := readTestCollection(t)
	s, ok := c.BySID(wordnet.MustParse("00791078-n"))
	if !ok {
		t.Fatalf("BySID: missing synset")
	}

	if diff := cmp.Diff([]string{"test", "trial"}, s.Lemmas()); diff != "" {
		t.Errorf("Lemmas (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"test%1:04:00::", "trial%1:04:00::"}, s.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"trying something to find out about it"}, s.Definitions()); diff != "" {
		t.Errorf("Definitions (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a sample for ten days free trial"}, s.Examples()); diff != "" {
		t.Errorf("Examples (-want, +got):\n%s", diff)
	}

	wantRaw := []gloss.RawGloss{
		{Category: "orig", Text: `trying something to find out about it; "a sample for ten days free trial"`},
		{Category: "text", Text: `trying something to find out about it; "a sample for ten days free trial"`},
	}
	if diff := cmp.Diff(wantRaw, s.RawGlosses()); diff != "" {
		t.Errorf("RawGlosses (-want, +got):\n%s", diff)
	}
}

func TestReader_glosses(t *testing.T) {
	t.Parallel()

	c := readTestCollection(t)
	s, _ := c.BySK("trial%1:04:00::")
	glosses := s.Glosses()
	if len(glosses) != 2 {
		t.Fatalf("Glosses: want 2, got %d", len(glosses))
	}
	def, ex := glosses[0], glosses[1]

	if got, want := def.Category(), gloss.CategoryDef; got != want {
		t.Errorf("Category: want %q, got %q", want, got)
	}
	if got, want := def.OrigID(), "n00791078_d"; got != want {
		t.Errorf("OrigID: want %q, got %q", want, got)
	}
	if got, want := ex.Category(), gloss.CategoryEx; got != want {
		t.Errorf("Category: want %q, got %q", want, got)
	}

	find, _ := def.Item(3)
	want := gloss.ItemFields{
		ItemID:   4,
		OrigID:   "n00791078_wf4",
		Tag:      "man",
		Lemma:    "find_out%2",
		POS:      "VB",
		Category: gloss.ItemCollocation,
		Coll:     "a",
		Text:     "find",
	}
	if diff := cmp.Diff(want, find.ItemFields); diff != "" {
		t.Errorf("ItemFields (-want, +got):\n%s", diff)
	}

	groups := def.Groups()
	if len(groups) != 1 || groups[0].Label != "coll:a" {
		t.Fatalf("Groups: want one collocation group, got %v", groups)
	}
	if diff := cmp.Diff([]string{"find", "out"}, surfaces(def.GroupItems(groups[0]))); diff != "" {
		t.Errorf("GroupItems (-want, +got):\n%s", diff)
	}

	groups = ex.Groups()
	if len(groups) != 1 || groups[0].Label != "qf" {
		t.Fatalf("Groups: want one quote group, got %v", groups)
	}
	if got, want := groups[0].Len(), ex.Len(); got != want {
		t.Errorf("Len: want %d, got %d", want, got)
	}
}

func TestReader_tags(t *testing.T) {
	t.Parallel()

	c := readTestCollection(t)
	s, _ := c.BySID(wordnet.MustParse("n00791078"))
	def := s.Glosses()[0]

	if diff := cmp.Diff([]string{"try%2:41:00::", "find_out%2:32:00::"}, def.TaggedSenseKeys()); diff != "" {
		t.Errorf("TaggedSenseKeys (-want, +got):\n%s", diff)
	}

	tags := def.Tags()
	if len(tags) != 2 {
		t.Fatalf("Tags: want 2, got %d", len(tags))
	}

	// try%2:41:00:: is not in the collection.
	if !tags[0].SID.IsZero() {
		t.Errorf("SID: want zero, got %v", tags[0].SID)
	}

	glob := tags[1]
	want := gloss.TagFields{
		TagID:     2,
		Category:  "glob",
		Tag:       "man",
		Glob:      "man",
		GlobLemma: "find_out%2",
		GlobID:    "n00791078_id2",
		Coll:      "a",
		OrigID:    "n00791078_id3",
		SID:       wordnet.MustParse("v00918872"),
		SenseKey:  "find_out%2:32:00::",
		Lemma:     "find_out",
	}
	if diff := cmp.Diff(want, glob.TagFields, cmp.AllowUnexported(wordnet.SynsetID{})); diff != "" {
		t.Errorf("TagFields (-want, +got):\n%s", diff)
	}
	if got, want := glob.Item(), 3; got != want {
		t.Errorf("Item: want %d, got %d", want, got)
	}

	ex := s.Glosses()[1]
	trial := ex.Tags()[0]
	if got, want := trial.SID, s.ID(); got != want {
		t.Errorf("SID: want %v, got %v", want, got)
	}
}

func TestReader_multipleTags(t *testing.T) {
	t.Parallel()

	c := readTestCollection(t)
	s, _ := c.BySK("find_out%2:32:00::")

	glosses := s.Glosses()
	if len(glosses) != 2 {
		t.Fatalf("Glosses: want 2, got %d", len(glosses))
	}
	def := glosses[0]
	establish, _ := def.Item(0)
	if got := len(def.ItemTags(establish)); got != 2 {
		t.Errorf("ItemTags: want 2, got %d", got)
	}

	// Tokens outside of a segment are kept in a "wsd" gloss.
	stray := glosses[1]
	if got, want := stray.Category(), gloss.CategoryWSD; got != want {
		t.Errorf("Category: want %q, got %q", want, got)
	}
	if got, want := stray.Text(), "."; got != want {
		t.Errorf("Text: want %q, got %q", want, got)
	}
	if diff := cmp.Diff([]string{"establish after a calculation"}, s.Definitions()); diff != "" {
		t.Errorf("Definitions (-want, +got):\n%s", diff)
	}
}

func TestReader_ids(t *testing.T) {
	t.Parallel()

	r := gwnxml.NewReader(nil)
	for range 2 {
		if err := r.Read(strings.NewReader(testutil.GlossXML)); err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	c := r.Collection()

	// The second read replaces the synsets of the first.
	if got, want := c.Len(), 4; got != want {
		t.Fatalf("Len: want %d, got %d", want, got)
	}
	first, second := c.At(0), c.At(2)
	if first.ID() != second.ID() {
		t.Fatalf("At: want equal IDs, got %v and %v", first.ID(), second.ID())
	}
	if first.Glosses()[0].ID() == second.Glosses()[0].ID() {
		t.Fatalf("ID: gloss IDs are not unique")
	}
	i1, _ := first.Glosses()[0].Item(0)
	i2, _ := second.Glosses()[0].Item(0)
	if i1.ItemID == i2.ItemID {
		t.Fatalf("ItemID: item IDs are not unique")
	}
}

func TestReader_logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	r := gwnxml.NewReader(&gwnxml.Options{Logger: &log})
	if err := r.Read(strings.NewReader(testutil.GlossXML)); err != nil {
		t.Fatalf("Read: %v", err)
	}

	for _, msg := range []string{"skipping synset", "skipping element"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log: missing %q: %s", msg, buf.String())
		}
	}
}

func TestReader_syntax(t *testing.T) {
	t.Parallel()

	r := gwnxml.NewReader(nil)
	err := r.Read(strings.NewReader(`<wordnet><synset id="n00791078"><terms><term>test</terms>`))
	if !errors.Is(err, gwnxml.ErrSyntax) {
		t.Fatalf("Read: want ErrSyntax, got %v", err)
	}
}
