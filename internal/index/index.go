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

// Package index implements a generic sorted array index with exact and
// prefix search.
package index

import (
	"slices"
	"sort"
	"strings"
)

// Entry is an index entry.
type Entry[V any] struct {
	Key   string
	Value V
}

// Index is an immutable sorted array index. Entries with equal keys keep
// their original relative order.
type Index[V any] struct {
	entries []Entry[V]
	cmp     func(string, string) int
}

// New creates an index from the given entries and comparison function.
// cmp(a, b) should return a negative number when a < b, a positive number
// when a > b and zero when a == b. Prefix search additionally requires cmp
// to order strings sharing a prefix contiguously, which byte-wise orderings
// such as strings.Compare do.
func New[V any](entries []Entry[V], cmp func(string, string) int) *Index[V] {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry[V]) int {
		return cmp(a.Key, b.Key)
	})
	return &Index[V]{
		entries: sorted,
		cmp:     cmp,
	}
}

// Len returns the number of entries.
func (idx *Index[V]) Len() int {
	return len(idx.entries)
}

// Search performs a binary search over the index and returns the values of
// entries whose key equals key.
func (idx *Index[V]) Search(key string) []V {
	i, found := sort.Find(len(idx.entries), func(i int) int {
		return idx.cmp(key, idx.entries[i].Key)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.entries) && idx.cmp(key, idx.entries[i].Key) == 0; i++ {
		values = append(values, idx.entries[i].Value)
	}
	return values
}

// Prefix returns the values of entries whose key starts with prefix, in key
// order.
func (idx *Index[V]) Prefix(prefix string) []V {
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.cmp(idx.entries[i].Key, prefix) >= 0
	})

	var values []V
	for ; i < len(idx.entries) && strings.HasPrefix(idx.entries[i].Key, prefix); i++ {
		values = append(values, idx.entries[i].Value)
	}
	return values
}
