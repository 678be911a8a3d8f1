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

// Package wordnet implements the in-memory data model for WordNet style
// lexicons in pure Go.
//
// A lexicon is made of synsets: groups of word senses that are considered
// synonymous. Synsets are addressed by a SynsetID which has three textual
// encodings depending on where the data came from:
//  1. The canonical encoding, OFFSET-POS (e.g. 01775535-v), used by the
//     WordNet data files and NLTK.
//  2. The WordNet SQL encoding, POSNUM followed by OFFSET (e.g. 201775535),
//     used by the wnsql SQLite databases.
//  3. The Gloss WordNet encoding, POS followed by OFFSET (e.g. v01775535),
//     used by the sense-tagged gloss corpus.
//
// Parse accepts all three encodings and SynsetID.Format renders any of
// them. Synsets are collected in a Collection which indexes them by ID and
// by sense key.
//
// The sense-tagged gloss model lives in the gloss package. Readers for the
// backing stores live in the wnsql, gwnsql and gwnxml packages.
package wordnet
