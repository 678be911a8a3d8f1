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

package gwnxml

import (
	"encoding/xml"
	"fmt"
	"slices"
	"strings"

	"github.com/ianlewis/go-wordnet/gloss"
)

// Segment elements of a "wsd" gloss that become groups.
var groupElements = []string{"qf", "mwf", "classif", "aux"}

// collGroupPrefix prefixes the label of a collocation group.
const collGroupPrefix = "coll:"

// glob is a <glob> tag waiting for the items of its collocation.
type glob struct {
	coll string
	tags []gloss.TagFields
}

// wsdReader reads the segments of a single "wsd" gloss.
type wsdReader struct {
	r *Reader
	d *xml.Decoder
	s *gloss.Synset

	g      *gloss.Gloss
	groups []*gloss.Group
	colls  map[string]*gloss.Group
	globs  []glob
}

func (w *wsdReader) read() error {
	for {
		tok, err := w.d.Token()
		if err != nil {
			return fmt.Errorf("%w: gloss of %v: %w", ErrSyntax, w.s.ID(), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			switch {
			case name == gloss.CategoryDef || name == gloss.CategoryEx:
				w.close()
				w.open(name, attr(t, "id"))
			case name == gloss.ItemWord || name == gloss.ItemCollocation || name == gloss.ItemPunctuation:
				if err := w.readItem(t); err != nil {
					return err
				}
			case name == "glob":
				if err := w.readGlob(t); err != nil {
					return err
				}
			case slices.Contains(groupElements, name):
				g := w.gloss()
				w.groups = append(w.groups, g.AddGroup(name))
			default:
				w.r.log.Debug().Stringer("synset", w.s.ID()).Str("element", name).Msg("skipping element")
				if err := w.d.Skip(); err != nil {
					return fmt.Errorf("%w: %w", ErrSyntax, err)
				}
			}

		case xml.EndElement:
			name := t.Name.Local
			switch {
			case name == "gloss":
				w.close()
				return nil
			case name == gloss.CategoryDef || name == gloss.CategoryEx:
				w.close()
			case slices.Contains(groupElements, name) && len(w.groups) > 0:
				w.groups = w.groups[:len(w.groups)-1]
			}
		}
	}
}

// open starts a new gloss.
func (w *wsdReader) open(category, origID string) {
	w.r.glossID++
	w.g = w.s.AddGloss(origID, category, w.r.glossID)
	w.colls = map[string]*gloss.Group{}
}

// gloss returns the current gloss. Tokens outside of a <def> or <ex> segment
// are added to a "wsd" gloss.
func (w *wsdReader) gloss() *gloss.Gloss {
	if w.g == nil {
		w.open(gloss.CategoryWSD, "")
	}
	return w.g
}

// close finishes the current gloss, if any.
func (w *wsdReader) close() {
	if w.g == nil {
		return
	}

	for _, gl := range w.globs {
		item := w.collItem(gl.coll)
		if item == nil {
			w.r.log.Debug().Stringer("synset", w.s.ID()).Str("coll", gl.coll).Msg("dropping glob without collocation")
			continue
		}
		for _, f := range gl.tags {
			w.tag(item, f)
		}
	}

	switch w.g.Category() {
	case gloss.CategoryDef:
		w.s.AddDefinition(w.g.Text())
	case gloss.CategoryEx:
		w.s.AddExample(w.g.Text())
	}

	w.g = nil
	w.groups = nil
	w.colls = nil
	w.globs = nil
}

// collItem returns the first item of the current gloss that is part of the
// collocation coll.
func (w *wsdReader) collItem(coll string) *gloss.Item {
	for _, item := range w.g.Items() {
		if slices.Contains(splitColl(item.Coll), coll) {
			return item
		}
	}
	return nil
}

func splitColl(coll string) []string {
	var colls []string
	for _, c := range strings.Split(coll, ",") {
		if c = strings.TrimSpace(c); c != "" {
			colls = append(colls, c)
		}
	}
	return colls
}

func (w *wsdReader) tag(item *gloss.Item, f gloss.TagFields) {
	w.r.tagID++
	f.TagID = w.r.tagID
	if _, err := w.g.TagItem(item, f); err != nil {
		w.r.log.Debug().Err(err).Msg("skipping tag")
	}
}

// readItem reads a <wf>, <cf> or <punc> token with its <id> tags.
func (w *wsdReader) readItem(start xml.StartElement) error {
	f := gloss.ItemFields{
		OrigID:   attr(start, "id"),
		Tag:      attr(start, "tag"),
		Lemma:    attr(start, "lemma"),
		POS:      attr(start, "pos"),
		Category: start.Name.Local,
		Coll:     attr(start, "coll"),
		RDF:      attr(start, "rdf"),
		Sep:      attr(start, "sep"),
	}

	var text strings.Builder
	var tags []gloss.TagFields
	for done := false; !done; {
		tok, err := w.d.Token()
		if err != nil {
			return fmt.Errorf("%w: <%s>: %w", ErrSyntax, start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			if t.Name.Local == "id" {
				tags = append(tags, idTag(t))
			}
			if err := w.d.Skip(); err != nil {
				return fmt.Errorf("%w: %w", ErrSyntax, err)
			}
		case xml.EndElement:
			done = true
		}
	}
	f.Text = text.String()

	g := w.gloss()
	w.r.itemID++
	f.ItemID = w.r.itemID
	item := g.AddItem(f)

	for _, grp := range w.groups {
		if err := g.AddToGroup(grp, item); err != nil {
			return err
		}
	}
	for _, coll := range splitColl(item.Coll) {
		grp, ok := w.colls[coll]
		if !ok {
			grp = g.AddGroup(collGroupPrefix + coll)
			w.colls[coll] = grp
		}
		if err := g.AddToGroup(grp, item); err != nil {
			return err
		}
	}

	for _, tf := range tags {
		w.tag(item, tf)
	}
	return nil
}

func idTag(e xml.StartElement) gloss.TagFields {
	return gloss.TagFields{
		Category: "id",
		OrigID:   attr(e, "id"),
		Lemma:    attr(e, "lemma"),
		SenseKey: attr(e, "sk"),
		Coll:     attr(e, "coll"),
	}
}

// readGlob reads a <glob> tag. It is attached to its collocation once the
// current gloss is complete.
func (w *wsdReader) readGlob(start xml.StartElement) error {
	base := gloss.TagFields{
		Category:  "glob",
		Tag:       attr(start, "tag"),
		Glob:      attr(start, "glob"),
		GlobLemma: attr(start, "lemma"),
		GlobID:    attr(start, "id"),
		Coll:      attr(start, "coll"),
	}

	var tags []gloss.TagFields
	for done := false; !done; {
		tok, err := w.d.Token()
		if err != nil {
			return fmt.Errorf("%w: <glob>: %w", ErrSyntax, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "id" {
				id := idTag(t)
				f := base
				f.OrigID = id.OrigID
				f.Lemma = id.Lemma
				f.SenseKey = id.SenseKey
				tags = append(tags, f)
			}
			if err := w.d.Skip(); err != nil {
				return fmt.Errorf("%w: %w", ErrSyntax, err)
			}
		case xml.EndElement:
			done = true
		}
	}
	if len(tags) == 0 {
		tags = append(tags, base)
	}

	w.gloss()
	w.globs = append(w.globs, glob{coll: base.Coll, tags: tags})
	return nil
}
