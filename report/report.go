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

// Package report writes synsets in human readable and JSON form.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/gloss"
)

// EmptyList is written by DumpSynsets for an empty list of synsets.
const EmptyList = "Empty synset list"

// DumpSynsets writes a table of the given synsets with one row per synset.
func DumpSynsets[S wordnet.Entry](w io.Writer, synsets []S) error {
	if len(synsets) == 0 {
		_, err := fmt.Fprintln(w, EmptyList)
		return err
	}

	tbl := table.New("ID", "Lemma", "Definition", "Tag count").WithWriter(w)
	for _, s := range synsets {
		core := s.Core()
		lemma, _ := core.Lemma()
		def, _ := core.Definition()
		tbl.AddRow(core.ID(), lemma, def, core.TagCount())
	}
	tbl.Print()
	return nil
}

// DumpSynset writes a detailed description of s. Glosses are included if s
// is a *gloss.Synset.
func DumpSynset(w io.Writer, s wordnet.Entry) error {
	p := &printer{w: w}

	core := s.Core()
	p.printf("Synset:      %v\n", core.ID())
	p.printf("Lemmas:      %s\n", strings.Join(core.Lemmas(), ", "))
	p.printf("Sense keys:  %s\n", strings.Join(core.Keys(), ", "))
	p.printf("Tag count:   %d\n", core.TagCount())
	for _, def := range core.Definitions() {
		p.printf("Definition:  %s\n", def)
	}
	for _, ex := range core.Examples() {
		p.printf("Example:     %s\n", ex)
	}

	if gs, ok := s.(*gloss.Synset); ok {
		p.glosses(gs)
	}
	return p.err
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *printer) glosses(s *gloss.Synset) {
	for _, r := range s.RawGlosses() {
		p.printf("%v\n", r)
	}

	for _, g := range s.Glosses() {
		p.printf("\n%v\n", g)
		if p.err != nil || g.Len() == 0 {
			continue
		}

		tbl := table.New("#", "Text", "Lemma", "POS", "Category", "Coll", "Tags").WithWriter(p.w)
		for _, item := range g.Items() {
			var keys []string
			for _, t := range g.ItemTags(item) {
				keys = append(keys, t.SenseKey)
			}
			tbl.AddRow(item.Order(), item.Text, item.Lemma, item.POS, item.Category, item.Coll, strings.Join(keys, ","))
		}
		tbl.Print()

		for _, grp := range g.Groups() {
			var words []string
			for _, item := range g.GroupItems(grp) {
				words = append(words, item.Surface())
			}
			p.printf("Group %s: %s\n", grp.Label, strings.Join(words, " "))
		}
	}
}

// Detail returns s as a generic JSON object. Gloss synsets also carry their
// raw and sense tagged glosses.
func Detail(s wordnet.Entry) map[string]any {
	m := s.Core().ToJSON()

	gs, ok := s.(*gloss.Synset)
	if !ok {
		return m
	}

	raw := map[string]string{}
	for _, r := range gs.RawGlosses() {
		raw[r.Category] = r.Text
	}
	m["raw"] = raw

	glosses := []map[string]any{}
	for _, g := range gs.Glosses() {
		keys := g.TaggedSenseKeys()
		if keys == nil {
			keys = []string{}
		}
		glosses = append(glosses, map[string]any{
			"id":       g.OrigID(),
			"category": g.Category(),
			"text":     g.Text(),
			"tagged":   keys,
		})
	}
	m["glosses"] = glosses
	return m
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}
