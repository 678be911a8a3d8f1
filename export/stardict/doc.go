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

// Package stardict exports synsets as a StarDict dictionary.
//
// A dictionary is made up of the following files.
//
//   - An .ifo file holding the dictionary metadata.
//   - An .idx file holding the sorted headwords and the location of their
//     articles.
//   - A .dict file, optionally compressed as .dict.dz, holding the articles.
//   - A .syn file mapping synonyms to .idx entries. It is only written when
//     a synset has more than one lemma.
//
// Every synset with a lemma becomes one article keyed by its canonical
// lemma. The other lemmas of the synset are written as synonyms.
package stardict
