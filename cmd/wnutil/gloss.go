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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/gwnxml"
	"github.com/ianlewis/go-wordnet/internal/config"
)

var glossCommand = &cli.Command{
	Name:      "gloss",
	Usage:     "Show the sense tagged glosses of synsets",
	ArgsUsage: "SYNSETID|KEY...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing synset ID or sense key", ErrFlagParse)
		}
		if name := c.String("source"); name == sourceWNSQL {
			return fmt.Errorf("%w: %s has no glosses", ErrUnsupported, name)
		}
		return withSource(c, func(ctx context.Context, src source) ([]wordnet.Entry, error) {
			var out []wordnet.Entry
			for _, arg := range c.Args().Slice() {
				s, err := lookup(ctx, src, arg)
				if err != nil {
					return nil, err
				}
				out = append(out, s)
			}
			return out, nil
		}, sourceGWN, sourceXML)
	},
}

// lookup finds a synset by ID, or by sense key if arg is not an ID.
func lookup(ctx context.Context, src source, arg string) (wordnet.Entry, error) {
	if id, err := wordnet.Parse(arg); err == nil {
		return src.bySID(ctx, id)
	}
	return src.bySK(ctx, arg)
}

var xmlCommand = &cli.Command{
	Name:      "xml",
	Usage:     "List the synsets of gloss corpus XML files",
	ArgsUsage: "FILE...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing file", ErrFlagParse)
		}

		// The files are the source so no configured database is required.
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if lvl := c.String("log-level"); lvl != "" {
			cfg.Log.Level = lvl
		}
		log, err := newLogger(c, cfg)
		if err != nil {
			return err
		}

		col, err := gwnxml.ReadFiles(c.Args().Slice(), &gwnxml.Options{Logger: &log})
		if err != nil {
			return err
		}
		log.Info().Int("synsets", col.Len()).Msg("read gloss corpus")
		return writeSynsets(c, entries(col.Synsets()))
	},
}
