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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-wordnet/internal/config"
	"github.com/ianlewis/go-wordnet/internal/logger"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrWnutil is a parent error for all command errors.
var ErrWnutil = errors.New("wnutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWnutil)

// ErrUnsupported indicates a feature is unsupported by the selected source.
var ErrUnsupported = fmt.Errorf("%w: unsupported", ErrWnutil)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = fmt.Errorf("%w: not found", ErrWnutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode maps an error returned by the app to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	default:
		return ExitCodeUnknownError
	}
}

func newWnutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Query WordNet and Gloss WordNet data.",
		Description: strings.Join([]string{
			"WordNet utility written in Go.",
			"http://github.com/ianlewis/go-wordnet",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "look up databases in `DIR`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "wnsql",
				Usage: "read the WordNet SQL database at `PATH`",
			},
			&cli.StringFlag{
				Name:  "gwn",
				Usage: "read the Gloss WordNet SQL database at `PATH`",
			},
			&cli.StringSliceFlag{
				Name:  "xml",
				Usage: "read the Gloss WordNet XML file at `PATH`",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "query `SOURCE` (wnsql, gwn or xml)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "write JSON output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log at `LEVEL`",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			synsetCommand,
			senseKeyCommand,
			termCommand,
			glossCommand,
			xmlCommand,
			exportCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n%s\n", c.App.Name, info.GitVersion, c.App.Copyright)
	return err
}

// loadConfig reads the configuration and applies the global flags on top of
// it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if dir := c.String("data-dir"); dir != "" {
		cfg.Data.Dir = dir
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = firstDir(dataLocations())
	}
	if p := c.String("wnsql"); p != "" {
		cfg.Data.WNSQL = p
	}
	if p := c.String("gwn"); p != "" {
		cfg.Data.GWNSQL = p
	}
	if paths := c.StringSlice("xml"); len(paths) > 0 {
		cfg.Data.GWNXML = paths
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	cfg.Data.Resolve()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return cfg, nil
}

func newLogger(c *cli.Context, cfg *config.Config) (zerolog.Logger, error) {
	l, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return l, nil
}

// firstDir returns the first path in dirs that is an existing directory.
func firstDir(dirs []string) string {
	for _, d := range dirs {
		if fi, err := os.Stat(d); err == nil && fi.IsDir() {
			return d
		}
	}
	return ""
}
