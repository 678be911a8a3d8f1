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

package testutil

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"os"
	"strings"
	"testing"
)

// IdxWord is an entry of an .idx file with 32 bit offsets.
type IdxWord struct {
	Word   string
	Offset uint32
	Size   uint32
}

// SynWord is an entry of a .syn file.
type SynWord struct {
	Word  string
	Index uint32
}

// splitEntries returns a split function for entries made up of a zero
// terminated word followed by size bytes of data.
func splitEntries(size int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexByte(data, 0); i >= 0 {
			tokenSize := i + 1 + size
			if len(data) >= tokenSize {
				return tokenSize, data[:tokenSize], nil
			}
		}
		if atEOF {
			return len(data), data, nil
		}
		// Request more data.
		return 0, nil, nil
	}
}

func scanEntries(t *testing.T, path string, size int, fn func(word string, data []byte)) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	s.Split(splitEntries(size))
	for s.Scan() {
		b := s.Bytes()
		i := bytes.IndexByte(b, 0)
		if i < 0 || len(b) != i+1+size {
			t.Fatalf("%s: truncated entry %q", path, b)
		}
		fn(string(b[:i]), b[i+1:])
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
}

// ReadIdx reads the entries of an .idx file.
func ReadIdx(t *testing.T, path string) []IdxWord {
	t.Helper()

	var words []IdxWord
	scanEntries(t, path, 8, func(word string, data []byte) {
		words = append(words, IdxWord{
			Word:   word,
			Offset: binary.BigEndian.Uint32(data),
			Size:   binary.BigEndian.Uint32(data[4:]),
		})
	})
	return words
}

// ReadSyn reads the entries of a .syn file.
func ReadSyn(t *testing.T, path string) []SynWord {
	t.Helper()

	var words []SynWord
	scanEntries(t, path, 4, func(word string, data []byte) {
		words = append(words, SynWord{
			Word:  word,
			Index: binary.BigEndian.Uint32(data),
		})
	})
	return words
}

// ReadIfo reads the key/value pairs of an .ifo file. The magic line is
// returned under the empty key.
func ReadIfo(t *testing.T, path string) map[string]string {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	values := map[string]string{"": lines[0]}
	for _, line := range lines[1:] {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			t.Fatalf("%s: invalid line %q", path, line)
		}
		values[k] = v
	}
	return values
}
