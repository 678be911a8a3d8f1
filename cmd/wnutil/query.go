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
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/internal/config"
	"github.com/ianlewis/go-wordnet/report"
	"github.com/ianlewis/go-wordnet/wnsql"
)

var synsetCommand = &cli.Command{
	Name:      "synset",
	Usage:     "Look up synsets by ID",
	ArgsUsage: "SYNSETID...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing synset ID", ErrFlagParse)
		}
		var ids []wordnet.SynsetID
		for _, arg := range c.Args().Slice() {
			id, err := wordnet.Parse(arg)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
			ids = append(ids, id)
		}

		return withSource(c, func(ctx context.Context, src source) ([]wordnet.Entry, error) {
			var out []wordnet.Entry
			for _, id := range ids {
				s, err := src.bySID(ctx, id)
				if err != nil {
					return nil, err
				}
				out = append(out, s)
			}
			return out, nil
		}, sourceWNSQL, sourceGWN, sourceXML)
	},
}

var senseKeyCommand = &cli.Command{
	Name:      "sensekey",
	Usage:     "Look up the synset of sense keys",
	ArgsUsage: "KEY...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing sense key", ErrFlagParse)
		}
		return withSource(c, func(ctx context.Context, src source) ([]wordnet.Entry, error) {
			var out []wordnet.Entry
			for _, key := range c.Args().Slice() {
				s, err := src.bySK(ctx, key)
				if err != nil {
					return nil, err
				}
				out = append(out, s)
			}
			return out, nil
		}, sourceWNSQL, sourceGWN, sourceXML)
	},
}

var termCommand = &cli.Command{
	Name:      "term",
	Usage:     "Search synsets by lemma",
	ArgsUsage: "TERM",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "pos",
			Usage: "only return synsets with part of speech `POS`",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one term", ErrFlagParse)
		}
		var pos wordnet.POS
		if p := c.String("pos"); p != "" {
			var err error
			if pos, err = wordnet.ParsePOS(p); err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
		}
		return withSource(c, func(ctx context.Context, src source) ([]wordnet.Entry, error) {
			return src.byTerm(ctx, c.Args().First(), pos)
		}, sourceWNSQL, sourceGWN, sourceXML)
	},
}

// withSource opens the selected source, runs query and writes the result.
// A single synset is written in detail and several as a table.
func withSource(c *cli.Context, query func(context.Context, source) ([]wordnet.Entry, error), prefer ...string) error {
	src, cfg, log, err := openFromFlags(c, prefer...)
	if err != nil {
		return err
	}
	defer src.Close()

	synsets, err := query(c.Context, src)
	if err != nil {
		return err
	}

	if _, ok := src.(*wnsqlSource); !ok {
		if err := fillTagCounts(c.Context, cfg, &log, synsets); err != nil {
			return err
		}
	}

	return writeSynsets(c, synsets)
}

// openFromFlags loads the configuration and opens the source selected with
// --source, or the first configured source in prefer.
func openFromFlags(c *cli.Context, prefer ...string) (source, *config.Config, zerolog.Logger, error) {
	log := zerolog.Nop()
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, log, err
	}
	if log, err = newLogger(c, cfg); err != nil {
		return nil, nil, log, err
	}
	src, err := openSource(cfg, c.String("source"), &log, prefer...)
	if err != nil {
		return nil, nil, log, err
	}
	return src, cfg, log, nil
}

func writeSynsets(c *cli.Context, synsets []wordnet.Entry) error {
	w := c.App.Writer
	if c.Bool("json") {
		details := make([]map[string]any, 0, len(synsets))
		for _, s := range synsets {
			details = append(details, report.Detail(s))
		}
		return report.WriteJSON(w, details)
	}
	if len(synsets) == 1 {
		return report.DumpSynset(w, synsets[0])
	}
	return report.DumpSynsets(w, synsets)
}

// fillTagCounts sets the tag counts of synsets read from a gloss source
// using the WordNet SQL database, when one is configured.
func fillTagCounts(ctx context.Context, cfg *config.Config, log *zerolog.Logger, synsets []wordnet.Entry) error {
	if cfg.Data.WNSQL == "" || len(synsets) == 0 {
		return nil
	}
	db, err := wnsql.Open(cfg.Data.WNSQL, &wnsql.Options{Logger: log})
	if err != nil {
		return err
	}
	defer db.Close()

	for _, s := range synsets {
		core := s.Core()
		n, err := db.TagCount(ctx, core.ID())
		if errors.Is(err, wnsql.ErrNotFound) {
			log.Debug().Stringer("synset", core.ID()).Msg("no tag count")
			continue
		}
		if err != nil {
			return err
		}
		core.SetTagCount(n)
	}
	return nil
}
