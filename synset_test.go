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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet"
)

func TestSynset_Lemma(t *testing.T) {
	t.Parallel()

	s := wordnet.NewSynset(wordnet.MustParse("01775535-v"))

	if l, ok := s.Lemma(); ok {
		t.Fatalf("Lemma: want absent, got %q", l)
	}

	err := s.SetLemma("")
	if !errors.Is(err, wordnet.ErrEmptyLemma) {
		t.Fatalf("SetLemma(\"\"): want ErrEmptyLemma, got %v", err)
	}
	if got := s.Lemmas(); len(got) != 0 {
		t.Fatalf("Lemmas: failed SetLemma modified lemmas: %v", got)
	}

	if err := s.SetLemma("prefer"); err != nil {
		t.Fatalf("SetLemma: %v", err)
	}
	s.AddLemma("choose")
	if err := s.SetLemma("favor"); err != nil {
		t.Fatalf("SetLemma: %v", err)
	}
	if err := s.SetLemma(""); !errors.Is(err, wordnet.ErrEmptyLemma) {
		t.Fatalf("SetLemma(\"\"): want ErrEmptyLemma, got %v", err)
	}

	if diff := cmp.Diff([]string{"favor", "choose"}, s.Lemmas()); diff != "" {
		t.Fatalf("Lemmas (-want, +got):\n%s", diff)
	}
	if l, ok := s.Lemma(); !ok || l != "favor" {
		t.Fatalf("Lemma: want %q, got %q (%v)", "favor", l, ok)
	}
}

func TestSynset_Definition(t *testing.T) {
	t.Parallel()

	s := wordnet.NewSynset(wordnet.MustParse("01775535-v"))
	if d, ok := s.Definition(); ok {
		t.Fatalf("Definition: want absent, got %q", d)
	}

	s.SetDefinition("first")
	if diff := cmp.Diff([]string{"first"}, s.Definitions()); diff != "" {
		t.Fatalf("Definitions (-want, +got):\n%s", diff)
	}

	s.AddDefinition("second")
	s.SetDefinition("replaced")
	if diff := cmp.Diff([]string{"replaced", "second"}, s.Definitions()); diff != "" {
		t.Fatalf("Definitions (-want, +got):\n%s", diff)
	}
	if d, ok := s.Definition(); !ok || d != "replaced" {
		t.Fatalf("Definition: want %q, got %q (%v)", "replaced", d, ok)
	}
}

func TestSynset_Tokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lemmas   []string
		expected []string
	}{
		{
			name:     "no lemmas",
			expected: nil,
		},
		{
			name:     "single words",
			lemmas:   []string{"test", "trial", "test"},
			expected: []string{"test", "trial"},
		},
		{
			name:     "multi word lemmas",
			lemmas:   []string{"test drive", "test", "road test"},
			expected: []string{"test drive", "test", "road test", "drive", "road"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := wordnet.NewSynset(wordnet.MustParse("00791078-n"))
			for _, l := range test.lemmas {
				s.AddLemma(l)
			}
			if diff := cmp.Diff(test.expected, s.Tokens()); diff != "" {
				t.Fatalf("Tokens (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSynset_MarshalJSON(t *testing.T) {
	t.Parallel()

	s := wordnet.NewSynset(wordnet.MustParse("201775535"))
	s.AddLemma("prefer")
	s.AddKey("prefer%2:31:00::")
	s.AddDefinition("like better; value more highly")
	s.AddExample("Some people prefer camping to staying in hotels")
	s.SetTagCount(37)

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	expected := map[string]any{
		"synsetid":   "01775535-v",
		"definition": "like better; value more highly",
		"lemmas":     []any{"prefer"},
		"sensekeys":  []any{"prefer%2:31:00::"},
		"tagcount":   float64(37),
		"examples":   []any{"Some people prefer camping to staying in hotels"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("MarshalJSON (-want, +got):\n%s", diff)
	}

	var decoded wordnet.Synset
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if want, got := s.ID(), decoded.ID(); want != got {
		t.Fatalf("ID: want %v, got %v", want, got)
	}
	if diff := cmp.Diff(s.ToJSON(), decoded.ToJSON()); diff != "" {
		t.Fatalf("ToJSON (-want, +got):\n%s", diff)
	}
}

func TestSynset_MarshalJSON_empty(t *testing.T) {
	t.Parallel()

	s := wordnet.NewSynset(wordnet.MustParse("00002684-n"))
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	expected := `{"synsetid":"00002684-n","definition":null,"lemmas":[],"sensekeys":[],"tagcount":0,"examples":[]}`
	if diff := cmp.Diff(expected, string(b)); diff != "" {
		t.Fatalf("MarshalJSON (-want, +got):\n%s", diff)
	}

	if got := s.ToJSON()["definition"]; got != nil {
		t.Fatalf("ToJSON definition: want nil, got %v", got)
	}
}
