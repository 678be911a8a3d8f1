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
	"iter"
	"strings"

	"github.com/ianlewis/go-wordnet/internal/folding"
	"github.com/ianlewis/go-wordnet/internal/index"
)

// TermIndex is an in-memory lemma index over a set of synsets. Lookups fold
// case and whitespace so "Natural  Language" finds "natural language".
//
// A TermIndex is a snapshot: synsets added to a collection after the index
// was built are not found.
type TermIndex[S Entry] struct {
	index *index.Index[S]
}

// NewTermIndex builds a term index over every lemma of the given synsets.
func NewTermIndex[S Entry](synsets iter.Seq[S]) (*TermIndex[S], error) {
	var entries []index.Entry[S]
	for s := range synsets {
		for _, lemma := range s.Core().Lemmas() {
			key, err := folding.String(folding.Key, lemma)
			if err != nil {
				return nil, err
			}
			entries = append(entries, index.Entry[S]{Key: key, Value: s})
		}
	}
	return &TermIndex[S]{
		index: index.New(entries, strings.Compare),
	}, nil
}

// Search returns the synsets having a lemma equal to term.
func (t *TermIndex[S]) Search(term string) ([]S, error) {
	key, err := folding.String(folding.Key, term)
	if err != nil {
		return nil, err
	}
	return dedup(t.index.Search(key)), nil
}

// Prefix returns the synsets having a lemma that starts with prefix.
func (t *TermIndex[S]) Prefix(prefix string) ([]S, error) {
	key, err := folding.String(folding.Key, prefix)
	if err != nil {
		return nil, err
	}
	return dedup(t.index.Prefix(key)), nil
}

// dedup removes synsets matched through more than one lemma.
func dedup[S Entry](synsets []S) []S {
	seen := make(map[SynsetID]bool, len(synsets))
	var out []S
	for _, s := range synsets {
		id := s.Core().ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, s)
	}
	return out
}
