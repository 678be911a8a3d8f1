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
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordnet/export/stardict"
)

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     "Export synsets as a Stardict dictionary",
	ArgsUsage: "DIR",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "base `NAME` of the dictionary files",
			Value: "wordnet",
		},
		&cli.StringFlag{
			Name:  "bookname",
			Usage: "dictionary `TITLE`",
		},
		&cli.StringFlag{
			Name:  "author",
			Usage: "dictionary `AUTHOR`",
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "dictionary `DESCRIPTION`",
		},
		&cli.BoolFlag{
			Name:  "dictzip",
			Usage: "compress the .dict file with dictzip",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected an output directory", ErrFlagParse)
		}

		src, _, log, err := openFromFlags(c, sourceWNSQL, sourceGWN, sourceXML)
		if err != nil {
			return err
		}
		defer src.Close()

		synsets, err := src.all(c.Context)
		if err != nil {
			return err
		}

		info, err := stardict.Write(c.Args().First(), c.String("name"), synsets, &stardict.Options{
			Bookname:    c.String("bookname"),
			Author:      c.String("author"),
			Description: c.String("description"),
			DictZip:     c.Bool("dictzip"),
			Logger:      &log,
		})
		if err != nil {
			return err
		}

		tbl := table.New("Ifo", "Words", "Synonyms", "Index size").WithWriter(c.App.Writer)
		tbl.AddRow(info.IfoPath, info.WordCount, info.SynWordCount, info.IdxFileSize)
		tbl.Print()
		return nil
	},
}
