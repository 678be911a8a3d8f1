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
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// GlossXML is a small gloss corpus file.
const GlossXML = `<?xml version="1.0" encoding="UTF-8"?>
<wordnet>
<synset id="n00791078" ofs="00791078" pos="n">
<terms><term>test</term><term>trial</term></terms>
<keys><sk>test%1:04:00::</sk><sk>trial%1:04:00::</sk></keys>
<gloss desc="orig"><orig>trying something to find out about it; &quot;a sample for ten days free trial&quot;</orig></gloss>
<gloss desc="text"><text>trying something to find out about it; "a sample for ten days free trial"</text></gloss>
<gloss desc="wsd">
<def id="n00791078_d">
<wf id="n00791078_wf1" lemma="try%2" pos="VBG" tag="man">trying<id id="n00791078_id1" lemma="try" sk="try%2:41:00::"/></wf>
<wf id="n00791078_wf2" lemma="something%1" pos="NN" tag="ignore">something</wf>
<wf id="n00791078_wf3" lemma="to%1" pos="TO" tag="ignore">to</wf>
<glob coll="a" glob="man" id="n00791078_id2" lemma="find_out%2" tag="man"><id coll="a" id="n00791078_id3" lemma="find_out" sk="find_out%2:32:00::"/></glob>
<cf coll="a" id="n00791078_wf4" lemma="find_out%2" pos="VB" tag="man">find</cf>
<cf coll="a" id="n00791078_wf5" lemma="find_out%2" pos="RP" tag="man">out</cf>
<wf id="n00791078_wf6" lemma="about%4" pos="IN" tag="un">about</wf>
<wf id="n00791078_wf7" lemma="it%1" pos="PRP" tag="ignore">it</wf>
</def>
<ex id="n00791078_ex1">
<qf rend="dq">
<wf id="n00791078_wf8" lemma="a%1" pos="DT" tag="ignore">a</wf>
<wf id="n00791078_wf9" lemma="sample%1" pos="NN" tag="un">sample</wf>
<wf id="n00791078_wf10" lemma="for%1" pos="IN" tag="ignore">for</wf>
<wf id="n00791078_wf11" lemma="ten%1" pos="CD" tag="un">ten</wf>
<wf id="n00791078_wf12" lemma="day%1" pos="NNS" tag="un">days</wf>
<wf id="n00791078_wf13" lemma="free%3" pos="JJ" tag="un">free</wf>
<wf id="n00791078_wf14" lemma="trial%1" pos="NN" tag="man">trial<id id="n00791078_id4" lemma="trial" sk="trial%1:04:00::"/></wf>
</qf>
</ex>
</gloss>
</synset>
<synset id="v00918872" ofs="00918872" pos="v">
<terms><term>find out</term></terms>
<keys><sk>find_out%2:32:00::</sk></keys>
<gloss desc="orig"><orig>establish after a calculation</orig></gloss>
<note>unknown elements are skipped</note>
<gloss desc="wsd">
<def id="v00918872_d">
<wf id="v00918872_wf1" lemma="establish%2" pos="VB" tag="man">establish<id id="v00918872_id1" lemma="establish" sk="establish%2:32:00::"/><id id="v00918872_id2" lemma="establish" sk="establish%2:31:00::"/></wf>
<wf id="v00918872_wf2" lemma="after%2" pos="IN" tag="un">after</wf>
<wf id="v00918872_wf3" lemma="a%1" pos="DT" tag="ignore">a</wf>
<wf id="v00918872_wf4" lemma="calculation%1" pos="NN" tag="un">calculation</wf>
</def>
<punc>.</punc>
</gloss>
</synset>
<synset id="bogus">
<terms><term>skipped</term></terms>
</synset>
</wordnet>
`

// MakeGlossXML writes GlossXML to a temporary file with the given extension
// and returns its path. Files ending in ".gz" are gzip compressed and files
// ending in ".dz" are dictzip compressed.
func MakeGlossXML(t *testing.T, ext string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gloss"+ext)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch filepath.Ext(path) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".dz":
		w, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	default:
		w = f
	}

	if _, err := io.WriteString(w, GlossXML); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
