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

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/gloss"
	"github.com/ianlewis/go-wordnet/gwnsql"
	"github.com/ianlewis/go-wordnet/gwnxml"
	"github.com/ianlewis/go-wordnet/internal/config"
	"github.com/ianlewis/go-wordnet/wnsql"
)

// Source names accepted by the --source flag.
const (
	sourceWNSQL = "wnsql"
	sourceGWN   = "gwn"
	sourceXML   = "xml"
)

// source is a queryable WordNet data set.
type source interface {
	bySID(ctx context.Context, id wordnet.SynsetID) (wordnet.Entry, error)
	bySK(ctx context.Context, key string) (wordnet.Entry, error)
	byTerm(ctx context.Context, term string, pos wordnet.POS) ([]wordnet.Entry, error)
	all(ctx context.Context) ([]wordnet.Entry, error)
	Close() error
}

// openSource opens the source named name. If name is empty the first
// configured source in prefer is used.
func openSource(cfg *config.Config, name string, log *zerolog.Logger, prefer ...string) (source, error) {
	if name == "" {
		for _, p := range prefer {
			if configured(cfg, p) {
				name = p
				break
			}
		}
	}
	if name != "" && !configured(cfg, name) {
		return nil, fmt.Errorf("%w: source %q is not configured", ErrFlagParse, name)
	}

	switch name {
	case sourceWNSQL:
		db, err := wnsql.Open(cfg.Data.WNSQL, &wnsql.Options{Logger: log})
		if err != nil {
			return nil, err
		}
		return &wnsqlSource{db: db}, nil
	case sourceGWN:
		db, err := gwnsql.Open(cfg.Data.GWNSQL, &gwnsql.Options{Logger: log})
		if err != nil {
			return nil, err
		}
		return &gwnsqlSource{db: db}, nil
	case sourceXML:
		c, err := gwnxml.ReadFiles(cfg.Data.GWNXML, &gwnxml.Options{Logger: log})
		if err != nil {
			return nil, err
		}
		return newXMLSource(c)
	case "":
		return nil, fmt.Errorf("%w: no source supports this command", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrFlagParse, name)
	}
}

func configured(cfg *config.Config, name string) bool {
	switch name {
	case sourceWNSQL:
		return cfg.Data.WNSQL != ""
	case sourceGWN:
		return cfg.Data.GWNSQL != ""
	case sourceXML:
		return len(cfg.Data.GWNXML) > 0
	}
	return false
}

func entries[S wordnet.Entry](synsets []S) []wordnet.Entry {
	out := make([]wordnet.Entry, 0, len(synsets))
	for _, s := range synsets {
		out = append(out, s)
	}
	return out
}

type wnsqlSource struct {
	db *wnsql.DB
}

func (s *wnsqlSource) bySID(ctx context.Context, id wordnet.SynsetID) (wordnet.Entry, error) {
	return s.db.BySID(ctx, id)
}

func (s *wnsqlSource) bySK(ctx context.Context, key string) (wordnet.Entry, error) {
	return s.db.BySK(ctx, key)
}

func (s *wnsqlSource) byTerm(ctx context.Context, term string, pos wordnet.POS) ([]wordnet.Entry, error) {
	c, err := s.db.ByTerm(ctx, term, pos)
	if err != nil {
		return nil, err
	}
	return entries(c.Synsets()), nil
}

func (s *wnsqlSource) all(ctx context.Context) ([]wordnet.Entry, error) {
	c, err := s.db.All(ctx)
	if err != nil {
		return nil, err
	}
	return entries(c.Synsets()), nil
}

func (s *wnsqlSource) Close() error {
	return s.db.Close()
}

type gwnsqlSource struct {
	db *gwnsql.DB
}

func (s *gwnsqlSource) bySID(ctx context.Context, id wordnet.SynsetID) (wordnet.Entry, error) {
	return s.db.BySID(ctx, id)
}

func (s *gwnsqlSource) bySK(ctx context.Context, key string) (wordnet.Entry, error) {
	return s.db.BySK(ctx, key)
}

func (s *gwnsqlSource) byTerm(ctx context.Context, term string, pos wordnet.POS) ([]wordnet.Entry, error) {
	c, err := s.db.ByTerm(ctx, term)
	if err != nil {
		return nil, err
	}
	return filterPOS(entries(c.Synsets()), pos), nil
}

func (s *gwnsqlSource) all(ctx context.Context) ([]wordnet.Entry, error) {
	c, err := s.db.All(ctx)
	if err != nil {
		return nil, err
	}
	return entries(c.Synsets()), nil
}

func (s *gwnsqlSource) Close() error {
	return s.db.Close()
}

// xmlSource serves synsets read from gloss corpus XML files.
type xmlSource struct {
	c     *gloss.Collection
	terms *wordnet.TermIndex[*gloss.Synset]
}

func newXMLSource(c *gloss.Collection) (*xmlSource, error) {
	terms, err := wordnet.NewTermIndex(c.All())
	if err != nil {
		return nil, fmt.Errorf("indexing terms: %w", err)
	}
	return &xmlSource{c: c, terms: terms}, nil
}

func (s *xmlSource) bySID(_ context.Context, id wordnet.SynsetID) (wordnet.Entry, error) {
	if syn, ok := s.c.BySID(id); ok {
		return syn, nil
	}
	return nil, fmt.Errorf("%w: synset %v", ErrNotFound, id)
}

func (s *xmlSource) bySK(_ context.Context, key string) (wordnet.Entry, error) {
	if syn, ok := s.c.BySK(key); ok {
		return syn, nil
	}
	return nil, fmt.Errorf("%w: sense key %q", ErrNotFound, key)
}

func (s *xmlSource) byTerm(_ context.Context, term string, pos wordnet.POS) ([]wordnet.Entry, error) {
	synsets, err := s.terms.Search(term)
	if err != nil {
		return nil, err
	}
	return filterPOS(entries(synsets), pos), nil
}

func (s *xmlSource) all(context.Context) ([]wordnet.Entry, error) {
	return entries(s.c.Synsets()), nil
}

func (*xmlSource) Close() error {
	return nil
}

// filterPOS keeps the synsets with the given part of speech. The zero POS
// keeps everything.
func filterPOS(synsets []wordnet.Entry, pos wordnet.POS) []wordnet.Entry {
	if pos == 0 {
		return synsets
	}
	var out []wordnet.Entry
	for _, s := range synsets {
		if s.Core().ID().POS() == pos {
			out = append(out, s)
		}
	}
	return out
}
