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

package stardict

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/ianlewis/go-dictzip"
	"github.com/rs/zerolog"

	"github.com/ianlewis/go-wordnet"
)

// maxWordLen is the maximum length in bytes of a headword or synonym.
const maxWordLen = 255

// Options are options for writing a dictionary.
type Options struct {
	// Bookname is the dictionary name. It defaults to the base name of the
	// dictionary files.
	Bookname string

	Author      string
	Email       string
	Website     string
	Description string

	// DictZip compresses the .dict file with dictzip.
	DictZip bool

	// Logger receives debug messages about skipped synsets. A nil Logger
	// disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions are the default options for Write.
var DefaultOptions = &Options{}

// Info describes a written dictionary.
type Info struct {
	// IfoPath is the path of the .ifo file.
	IfoPath string

	WordCount    int
	SynWordCount int
	IdxFileSize  int64
}

// Write writes the synsets as a dictionary named name to dir.
func Write[S wordnet.Entry](dir, name string, synsets []S, options *Options) (*Info, error) {
	if options == nil {
		options = DefaultOptions
	}
	log := zerolog.Nop()
	if options.Logger != nil {
		log = options.Logger.With().Str("dict", name).Logger()
	}

	var articles []*article
	for _, s := range synsets {
		core := s.Core()
		lemma, ok := core.Lemma()
		if !ok {
			log.Debug().Stringer("synset", core.ID()).Msg("skipping synset without lemma")
			continue
		}
		if len(lemma) > maxWordLen {
			log.Debug().Stringer("synset", core.ID()).Msg("skipping synset with long lemma")
			continue
		}
		articles = append(articles, &article{
			word:    lemma,
			synset:  core,
			content: []byte(Article(core)),
		})
	}
	slices.SortStableFunc(articles, func(a, b *article) int {
		return compareWords(a.word, b.word)
	})

	var dict bytes.Buffer
	var idx []idxEntry
	var syns []synEntry
	for i, a := range articles {
		if uint64(dict.Len()+len(a.content)) > math.MaxUint32 {
			return nil, fmt.Errorf("writing %q: dictionary too large", name)
		}
		idx = append(idx, idxEntry{
			word: a.word,
			//nolint:gosec // checked above
			offset: uint32(dict.Len()),
			//nolint:gosec // checked above
			size: uint32(len(a.content)),
		})
		dict.Write(a.content)

		for _, lemma := range a.synset.Lemmas()[1:] {
			if lemma == a.word || len(lemma) > maxWordLen {
				continue
			}
			//nolint:gosec // the number of articles fits the offsets
			syns = append(syns, synEntry{word: lemma, index: uint32(i)})
		}
	}
	slices.SortStableFunc(syns, func(a, b synEntry) int {
		return compareWords(a.word, b.word)
	})
	syns = slices.Compact(syns)

	base := filepath.Join(dir, name)
	info := &Info{
		IfoPath:      base + ".ifo",
		WordCount:    len(idx),
		SynWordCount: len(syns),
	}

	idxData := encodeIdx(idx)
	info.IdxFileSize = int64(len(idxData))
	if err := writeFile(base+".idx", idxData); err != nil {
		return nil, err
	}
	if len(syns) > 0 {
		if err := writeFile(base+".syn", encodeSyn(syns)); err != nil {
			return nil, err
		}
	}
	if err := writeDict(base, dict.Bytes(), options.DictZip); err != nil {
		return nil, err
	}

	bookname := options.Bookname
	if bookname == "" {
		bookname = name
	}
	if err := writeFile(info.IfoPath, encodeIfo(ifo{
		bookname:     bookname,
		wordcount:    info.WordCount,
		synwordcount: info.SynWordCount,
		idxfilesize:  info.IdxFileSize,
		author:       options.Author,
		email:        options.Email,
		website:      options.Website,
		description:  options.Description,
	})); err != nil {
		return nil, err
	}

	log.Debug().Int("words", info.WordCount).Int("synonyms", info.SynWordCount).Msg("wrote dictionary")
	return info, nil
}

// article is a dictionary article for a synset.
type article struct {
	word    string
	synset  *wordnet.Synset
	content []byte
}

func writeFile(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

func writeDict(base string, b []byte, dz bool) error {
	if !dz {
		return writeFile(base+".dict", b)
	}

	path := base + ".dict.dz"
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if _, err := io.Copy(z, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
