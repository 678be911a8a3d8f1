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

package wnsql_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/internal/testutil"
	"github.com/ianlewis/go-wordnet/wnsql"
)

func openTestDB(t *testing.T) *wnsql.DB {
	t.Helper()

	db, err := wnsql.Open(testutil.MakeWNSQL(t), &wnsql.Options{PoolSize: 2})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func ids(c *wordnet.SynsetCollection) []string {
	var got []string
	for s := range c.All() {
		got = append(got, s.ID().String())
	}
	return got
}

func TestOpen_missing(t *testing.T) {
	t.Parallel()

	_, err := wnsql.Open(filepath.Join(t.TempDir(), "missing.db"), nil)
	if err == nil {
		t.Fatalf("Open: expected error")
	}
}

func TestDB_BySID(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	s, err := db.BySID(context.Background(), wordnet.MustParse("v01775535"))
	if err != nil {
		t.Fatalf("BySID: %v", err)
	}

	if got, want := s.ID().Format(wordnet.WNSQL), "201775535"; got != want {
		t.Errorf("ID: want %q, got %q", want, got)
	}
	if diff := cmp.Diff([]string{"like", "care for"}, s.Lemmas()); diff != "" {
		t.Errorf("Lemmas (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"like%2:37:05::", "care_for%2:37:04::"}, s.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"I like jazz", "she cares for animals"}, s.Examples()); diff != "" {
		t.Errorf("Examples (-want, +got):\n%s", diff)
	}
	if def, _ := s.Definition(); def != "have affection for; be fond of" {
		t.Errorf("Definition: got %q", def)
	}
	if got, want := s.TagCount(), 25; got != want {
		t.Errorf("TagCount: want %d, got %d", want, got)
	}
}

func TestDB_BySID_notFound(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	_, err := db.BySID(context.Background(), wordnet.MustParse("02000000-v"))
	if !errors.Is(err, wnsql.ErrNotFound) {
		t.Fatalf("BySID: want ErrNotFound, got %v", err)
	}

	_, err = db.BySID(context.Background(), wordnet.SynsetID{})
	if !errors.Is(err, wordnet.ErrInvalidFormat) {
		t.Fatalf("BySID: want ErrInvalidFormat, got %v", err)
	}
}

func TestDB_BySK(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	s, err := db.BySK(context.Background(), " test%2:32:00:: ")
	if err != nil {
		t.Fatalf("BySK: %v", err)
	}
	if got, want := s.ID().String(), "01006675-v"; got != want {
		t.Fatalf("BySK: want %q, got %q", want, got)
	}

	if _, err := db.BySK(context.Background(), "nothing%1:00:00::"); !errors.Is(err, wnsql.ErrNotFound) {
		t.Fatalf("BySK: want ErrNotFound, got %v", err)
	}
}

func TestDB_ByTerm(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	testCases := map[string]struct {
		lemma string
		pos   wordnet.POS
		want  []string
	}{
		"any pos": {
			lemma: "TEST",
			want:  []string{"00791078-n", "00794367-n", "01006675-v"},
		},
		"verb": {
			lemma: "test",
			pos:   wordnet.Verb,
			want:  []string{"01006675-v"},
		},
		"multi-word": {
			lemma: "  Care   For ",
			want:  []string{"01775535-v"},
		},
		"missing": {
			lemma: "nothing",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := db.ByTerm(context.Background(), tc.lemma, tc.pos)
			if err != nil {
				t.Fatalf("ByTerm: %v", err)
			}
			if diff := cmp.Diff(tc.want, ids(c)); diff != "" {
				t.Fatalf("ByTerm (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDB_ByTerm_index(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	c, err := db.ByTerm(context.Background(), "test", 0)
	if err != nil {
		t.Fatalf("ByTerm: %v", err)
	}
	s, ok := c.BySK("trial%1:04:00::")
	if !ok {
		t.Fatalf("BySK: missing synset")
	}
	if got, want := s.ID().String(), "00791078-n"; got != want {
		t.Fatalf("BySK: want %q, got %q", want, got)
	}
}

func TestDB_TagCount(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	n, err := db.TagCount(context.Background(), wordnet.MustParse("100791078"))
	if err != nil {
		t.Fatalf("TagCount: %v", err)
	}
	if n != 18 {
		t.Fatalf("TagCount: want 18, got %d", n)
	}

	n, err = db.TagCount(context.Background(), wordnet.MustParse("100794367"))
	if err != nil {
		t.Fatalf("TagCount: %v", err)
	}
	if n != 0 {
		t.Fatalf("TagCount: want 0, got %d", n)
	}

	if _, err := db.TagCount(context.Background(), wordnet.MustParse("n09999999")); !errors.Is(err, wnsql.ErrNotFound) {
		t.Fatalf("TagCount: want ErrNotFound, got %v", err)
	}
}

func TestDB_All(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)

	c, err := db.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want := []string{"00791078-n", "00794367-n", "01006675-v", "01775535-v"}
	if diff := cmp.Diff(want, ids(c)); diff != "" {
		t.Fatalf("All (-want, +got):\n%s", diff)
	}
}

// largeWNSQL holds more synsets than SQLite binds in one statement. Synset
// x has the lemma "wordx", one sense and one sample.
const largeWNSQL = `
WITH RECURSIVE seq(x) AS (SELECT 1 UNION ALL SELECT x + 1 FROM seq WHERE x < 40000)
INSERT INTO synsets (synsetid, pos, definition) SELECT 100000000 + x, 'n', 'definition ' || x FROM seq;
WITH RECURSIVE seq(x) AS (SELECT 1 UNION ALL SELECT x + 1 FROM seq WHERE x < 40000)
INSERT INTO words (wordid, lemma) SELECT x, 'word' || x FROM seq;
WITH RECURSIVE seq(x) AS (SELECT 1 UNION ALL SELECT x + 1 FROM seq WHERE x < 40000)
INSERT INTO senses (wordid, synsetid, senseid, sensekey, sensenum, tagcount)
	SELECT x, 100000000 + x, x, 'word' || x || '%1:04:00::', 1, 1 FROM seq;
WITH RECURSIVE seq(x) AS (SELECT 1 UNION ALL SELECT x + 1 FROM seq WHERE x < 40000)
INSERT INTO samples (synsetid, sampleid, sample) SELECT 100000000 + x, 1, 'sample ' || x FROM seq;
`

func TestDB_All_large(t *testing.T) {
	t.Parallel()

	path := testutil.MakeDB(t, "large.db", testutil.WNSQLSchema, largeWNSQL)
	db, err := wnsql.Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})

	c, err := db.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if want, got := 40000, c.Len(); want != got {
		t.Fatalf("Len: want %d, got %d", want, got)
	}

	// Synsets on both sides of a chunk boundary are fully loaded.
	for i, n := range []int{1, 30000, 30001, 40000} {
		s := c.At(n - 1)
		want := fmt.Sprintf("%08d-n", n)
		if got := s.ID().String(); got != want {
			t.Fatalf("At(%d): want %s, got %s", n-1, want, got)
		}
		lemma, _ := s.Lemma()
		def, _ := s.Definition()
		got := []any{lemma, s.Keys(), def, s.Examples(), s.TagCount()}
		expected := []any{
			fmt.Sprintf("word%d", n),
			[]string{fmt.Sprintf("word%d%%1:04:00::", n)},
			fmt.Sprintf("definition %d", n),
			[]string{fmt.Sprintf("sample %d", n)},
			1,
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("synset %d (-want, +got):\n%s", i, diff)
		}
	}
}
