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

// Package gwnxml reads the Princeton WordNet Gloss Corpus XML files.
//
// Each <synset> element becomes a gloss.Synset. The "orig" and "text"
// glosses become raw glosses. Every <def> and <ex> segment of the "wsd"
// gloss becomes a gloss.Gloss whose items are the segment's <wf>, <cf> and
// <punc> tokens. Files may be plain, gzip compressed (.gz) or dictzip
// compressed (.dz).
package gwnxml

import (
	"compress/gzip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/k3a/html2text"
	"github.com/rs/zerolog"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/gloss"
)

// ErrSyntax is returned when a file is not a gloss corpus XML file.
var ErrSyntax = errors.New("invalid gloss corpus xml")

// Options are options for reading gloss corpus files.
type Options struct {
	// Logger receives debug messages about skipped elements. A nil Logger
	// disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions are the default options for a Reader.
var DefaultOptions = &Options{}

// Reader reads gloss corpus files into a single collection. Numeric gloss,
// item and tag IDs are unique across all files read by a Reader. A Reader is
// not safe for concurrent use.
type Reader struct {
	c   *gloss.Collection
	log zerolog.Logger

	glossID int
	itemID  int
	tagID   int
}

// NewReader returns a new Reader.
func NewReader(options *Options) *Reader {
	if options == nil {
		options = DefaultOptions
	}
	r := &Reader{
		c:   gloss.NewCollection(),
		log: zerolog.Nop(),
	}
	if options.Logger != nil {
		r.log = options.Logger.With().Str("reader", "gwnxml").Logger()
	}
	return r
}

// ReadFiles reads the given files and returns the resulting collection.
func ReadFiles(paths []string, options *Options) (*gloss.Collection, error) {
	r := NewReader(options)
	for _, path := range paths {
		if err := r.ReadFile(path); err != nil {
			return nil, err
		}
	}
	return r.Collection(), nil
}

// Collection returns the synsets read so far. Tag synset IDs are resolved
// from tag sense keys against the synsets read so far.
func (r *Reader) Collection() *gloss.Collection {
	r.resolve()
	return r.c
}

// ReadFile reads the file at path. The file is decompressed based on its
// extension.
func (r *Reader) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var in io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		in = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		in = z
	}

	if err := r.Read(in); err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	r.log.Debug().Str("path", path).Int("synsets", r.c.Len()).Msg("read gloss file")
	return nil
}

// Read reads gloss corpus XML from in.
func (r *Reader) Read(in io.Reader) error {
	d := xml.NewDecoder(in)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSyntax, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "synset" {
			continue
		}
		s, err := r.readSynset(d, start)
		if err != nil {
			return err
		}
		if s != nil {
			r.c.Add(s)
		}
	}
}

func attr(e xml.StartElement, name string) string {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

func synsetID(start xml.StartElement) (wordnet.SynsetID, error) {
	if id := attr(start, "id"); id != "" {
		return wordnet.Parse(id)
	}
	pos, err := wordnet.ParsePOS(attr(start, "pos"))
	if err != nil {
		return wordnet.SynsetID{}, err
	}
	return wordnet.NewSynsetID(attr(start, "ofs"), pos)
}

// readSynset reads the contents of a <synset> element. It returns nil if the
// synset was skipped.
func (r *Reader) readSynset(d *xml.Decoder, start xml.StartElement) (*gloss.Synset, error) {
	id, err := synsetID(start)
	if err != nil {
		r.log.Debug().Err(err).Msg("skipping synset")
		if err := d.Skip(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		return nil, nil
	}
	s := gloss.NewSynset(id)

	for {
		tok, err := d.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: synset %v: %w", ErrSyntax, id, err)
		}
		switch t := tok.(type) {
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return s, nil
			}
		case xml.StartElement:
			switch t.Name.Local {
			case "term":
				text, err := readText(d, t)
				if err != nil {
					return nil, err
				}
				s.AddLemma(text)
			case "sk":
				text, err := readText(d, t)
				if err != nil {
					return nil, err
				}
				s.AddKey(text)
			case "gloss":
				if err := r.readGloss(d, t, s); err != nil {
					return nil, err
				}
			case "terms", "keys":
				// Containers. Their children are handled above.
			default:
				r.log.Debug().Stringer("synset", id).Str("element", t.Name.Local).Msg("skipping element")
				if err := d.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
				}
			}
		}
	}
}

// readText returns the character data of an element without markup.
func readText(d *xml.Decoder, start xml.StartElement) (string, error) {
	var v struct {
		Inner string `xml:",innerxml"`
	}
	if err := d.DecodeElement(&v, &start); err != nil {
		return "", fmt.Errorf("%w: <%s>: %w", ErrSyntax, start.Name.Local, err)
	}
	return strings.TrimSpace(html2text.HTML2Text(v.Inner)), nil
}

// readGloss reads a <gloss> element. Glosses other than "wsd" are kept as
// raw glosses.
func (r *Reader) readGloss(d *xml.Decoder, start xml.StartElement, s *gloss.Synset) error {
	desc := attr(start, "desc")
	if desc != gloss.CategoryWSD {
		text, err := readText(d, start)
		if err != nil {
			return err
		}
		s.AddRawGloss(desc, text)
		return nil
	}

	w := &wsdReader{r: r, d: d, s: s}
	return w.read()
}
