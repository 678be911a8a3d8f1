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

// Package gloss implements the sense-tagged gloss model of the WordNet gloss
// corpus.
//
// Each Synset carries its raw glosses, unprocessed definitional strings by
// category (typically "orig" and "text"), and a list of structured Gloss
// values. A Gloss owns an ordered list of Item tokens, the SenseTag
// annotations attached to those tokens and named Group values that gather
// tokens of a collocation or bracketed segment.
//
// Ownership is one-directional: Collection -> Synset -> Gloss -> Item. Links
// back up the tree are plain identifiers (a gloss's synset ID, an item's
// position, a tag's gloss ID) resolved through the owner.
package gloss
