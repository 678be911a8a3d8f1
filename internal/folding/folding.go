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

// Package folding implements text folding used to build and query lookup
// keys, and to compare gloss text independent of spacing.
package folding

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// Whitespace is a [transform.Transformer] that trims leading and trailing
// whitespace and replaces each internal whitespace span with a single ASCII
// space.
type Whitespace struct {
	// started is true once a non-space rune has been emitted.
	started bool

	// pending is true when a whitespace span has been consumed but its
	// replacement space has not been emitted yet.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if unicode.IsSpace(r) {
			nSrc += size
			if w.started {
				w.pending = true
			}
			continue
		}

		need := size
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		// Copy the source bytes rather than re-encoding r so invalid UTF-8
		// passes through unchanged.
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		w.started = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	*w = Whitespace{}
}

// Key returns a new transformer that produces lookup keys: whitespace is
// folded and case is folded.
func Key() transform.Transformer {
	return transform.Chain(&Whitespace{}, cases.Fold())
}

// String applies a new transformer returned by t to s.
func String(t func() transform.Transformer, s string) (string, error) {
	out, _, err := transform.String(t(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return out, nil
}

// Spaces folds the whitespace in s.
func Spaces(s string) string {
	// Whitespace never returns an error other than the short buffer errors
	// handled by transform.String.
	out, _, _ := transform.String(&Whitespace{}, s)
	return out
}
