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
	"path/filepath"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// WNSQLSchema creates the tables of a WordNet SQL database.
const WNSQLSchema = `
CREATE TABLE synsets (
	synsetid INTEGER PRIMARY KEY,
	pos TEXT NOT NULL,
	lexdomainid INTEGER NOT NULL DEFAULT 0,
	definition TEXT
);
CREATE TABLE words (
	wordid INTEGER PRIMARY KEY,
	lemma TEXT NOT NULL UNIQUE
);
CREATE TABLE senses (
	wordid INTEGER NOT NULL,
	synsetid INTEGER NOT NULL,
	senseid INTEGER PRIMARY KEY,
	sensekey TEXT,
	sensenum INTEGER NOT NULL DEFAULT 0,
	tagcount INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE samples (
	synsetid INTEGER NOT NULL,
	sampleid INTEGER NOT NULL,
	sample TEXT NOT NULL,
	PRIMARY KEY (synsetid, sampleid)
);
`

// WNSQLData is a small WordNet SQL data set.
const WNSQLData = `
INSERT INTO synsets VALUES
	(201775535, 'v', 37, 'have affection for; be fond of'),
	(100791078, 'n', 4, 'trying something to find out about it'),
	(201006675, 'v', 32, 'put to the test, as for its quality'),
	(100794367, 'n', 4, 'the act of testing something');
INSERT INTO words VALUES
	(1, 'like'),
	(2, 'care for'),
	(3, 'test'),
	(4, 'trial'),
	(5, 'try out');
INSERT INTO senses VALUES
	(1, 201775535, 1, 'like%2:37:05::', 2, 20),
	(2, 201775535, 2, 'care_for%2:37:04::', 1, 5),
	(3, 100791078, 3, 'test%1:04:00::', 1, 15),
	(4, 100791078, 4, 'trial%1:04:00::', 2, 3),
	(3, 201006675, 5, 'test%2:32:00::', 1, 7),
	(5, 201006675, 6, 'try_out%2:32:00::', 1, 1),
	(3, 100794367, 7, 'test%1:04:01::', 2, 0);
INSERT INTO samples VALUES
	(201775535, 1, 'I like jazz'),
	(201775535, 2, 'she cares for animals'),
	(201006675, 1, 'test this recipe');
`

// GWNSQLSchema creates the tables of a Gloss WordNet SQL database.
const GWNSQLSchema = `
CREATE TABLE synset (
	id TEXT PRIMARY KEY,
	"offset" TEXT NOT NULL,
	pos TEXT NOT NULL
);
CREATE TABLE term (
	sid TEXT NOT NULL,
	term TEXT NOT NULL
);
CREATE TABLE sensekey (
	sid TEXT NOT NULL,
	sensekey TEXT NOT NULL
);
CREATE TABLE gloss_raw (
	sid TEXT NOT NULL,
	cat TEXT,
	gloss TEXT
);
CREATE TABLE gloss (
	id INTEGER PRIMARY KEY,
	origid TEXT,
	sid TEXT NOT NULL,
	cat TEXT
);
CREATE TABLE glossitem (
	id INTEGER PRIMARY KEY,
	ord INTEGER NOT NULL,
	gid INTEGER NOT NULL,
	tag TEXT,
	lemma TEXT,
	pos TEXT,
	cat TEXT,
	coll TEXT,
	rdf TEXT,
	sep TEXT,
	text TEXT,
	origid TEXT
);
CREATE TABLE sensetag (
	id INTEGER PRIMARY KEY,
	cat TEXT,
	tag TEXT,
	glob TEXT,
	glob_lemma TEXT,
	glob_id TEXT,
	coll TEXT,
	sid TEXT,
	gid INTEGER NOT NULL,
	sk TEXT,
	origid TEXT,
	lemma TEXT,
	itemid INTEGER NOT NULL
);
`

// GWNSQLData is a small Gloss WordNet SQL data set. The items of gloss 2 are
// inserted out of order.
const GWNSQLData = `
INSERT INTO synset VALUES
	('n00791078', '00791078', 'n'),
	('v01775535', '01775535', 'v');
INSERT INTO term VALUES
	('n00791078', 'test'),
	('n00791078', 'trial'),
	('v01775535', 'like');
INSERT INTO sensekey VALUES
	('n00791078', 'test%1:04:00::'),
	('n00791078', 'trial%1:04:00::'),
	('v01775535', 'like%2:37:05::');
INSERT INTO gloss_raw VALUES
	('n00791078', 'orig', 'trying something to find out about it; "a sample for ten days free trial"'),
	('n00791078', 'text', 'trying something to find out about it; "a sample for ten days free trial"'),
	('v01775535', 'orig', 'have affection for');
INSERT INTO gloss VALUES
	(1, 'n00791078_d', 'n00791078', 'def'),
	(2, 'n00791078_ex1', 'n00791078', 'ex'),
	(3, 'v01775535_d', 'v01775535', 'def');
INSERT INTO glossitem VALUES
	(1, 0, 1, 'man', 'try%2', 'VBG', 'wf', '', '', '', 'trying', 'n00791078_wf1'),
	(2, 1, 1, 'ignore', 'something%1', 'NN', 'wf', '', '', '', 'something', 'n00791078_wf2'),
	(3, 2, 1, 'man', 'find_out%2', 'VB', 'cf', 'a', '', '', 'find', 'n00791078_wf3'),
	(4, 3, 1, 'man', 'find_out%2', 'RP', 'cf', 'a', '', '', 'out', 'n00791078_wf4'),
	(5, 4, 1, 'un', 'about%4', 'IN', 'wf', '', '', '', 'about', 'n00791078_wf5'),
	(6, 5, 1, '', 'it%1', 'PRP', 'wf', '', '', '', 'it', 'n00791078_wf6'),
	(10, 1, 2, '', 'sample%1', 'NN', 'wf', '', '', '', 'sample', 'n00791078_wf8'),
	(9, 0, 2, '', 'a%1', 'DT', 'wf', '', '', '', 'a', 'n00791078_wf7'),
	(11, 0, 3, 'man', 'have%2', 'VB', 'wf', '', '', '', 'have', 'v01775535_wf1'),
	(12, 1, 3, 'man', 'affection%1', 'NN', 'wf', '', '', '', 'affection', 'v01775535_wf2'),
	(13, 2, 3, '', 'for%1', 'IN', 'wf', '', '', '', 'for', 'v01775535_wf3');
INSERT INTO sensetag VALUES
	(1, 'id', 'man', '', '', '', '', 'v01195536', 1, 'try%2:41:00::', 'n00791078_id1', 'try', 1),
	(2, 'glob', 'man', 'man', 'find_out%2:32:00::', 'n00791078_id2', 'a', 'v00918872', 1, 'find_out%2:32:00::', 'n00791078_id2', 'find_out', 3),
	(3, 'id', 'un', '', '', '', '', '', 1, '', 'n00791078_id3', 'about', 5),
	(4, 'id', 'man', '', '', '', '', 'n07532440', 3, 'affection%1:12:00::', 'v01775535_id1', 'affection', 12),
	(5, 'id', 'man', '', '', '', '', '', 3, '', 'v01775535_id2', 'missing', 99);
`

// MakeDB creates a SQLite database named name in a temporary directory by
// running the given scripts and returns its path.
func MakeDB(t *testing.T, name string, scripts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	for _, s := range scripts {
		if err := sqlitex.ExecuteScript(conn, s, nil); err != nil {
			t.Fatal(err)
		}
	}
	return path
}

// MakeWNSQL creates a WordNet SQL database holding WNSQLData.
func MakeWNSQL(t *testing.T) string {
	t.Helper()
	return MakeDB(t, "wnsql.db", WNSQLSchema, WNSQLData)
}

// MakeGWNSQL creates a Gloss WordNet SQL database holding GWNSQLData.
func MakeGWNSQL(t *testing.T) string {
	t.Helper()
	return MakeDB(t, "gwn.db", GWNSQLSchema, GWNSQLData)
}
