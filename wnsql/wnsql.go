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

// Package wnsql reads synsets from a WordNet SQL (wnsql) database.
//
// The database holds the tables
//
//	synsets(synsetid, pos, lexdomainid, definition)
//	words(wordid, lemma)
//	senses(wordid, synsetid, senseid, sensekey, sensenum, tagcount)
//	samples(synsetid, sampleid, sample)
//
// where synsetid is the WNSQL encoding of a synset ID.
package wnsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/internal/folding"
	"github.com/ianlewis/go-wordnet/internal/sqldb"
)

// ErrNotFound is returned when a synset does not exist in the database.
var ErrNotFound = errors.New("synset not found")

// Options are options for opening a database.
type Options struct {
	// PoolSize is the maximum number of open connections. A value that is
	// not positive means one connection per CPU.
	PoolSize int

	// Logger receives debug messages about skipped records. A nil Logger
	// disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions are the default options for Open.
var DefaultOptions = &Options{}

// DB is a read-only WordNet SQL database. It is safe for concurrent use.
type DB struct {
	pool *sqlitex.Pool
	log  zerolog.Logger
}

// Open opens the database at path.
func Open(path string, options *Options) (*DB, error) {
	if options == nil {
		options = DefaultOptions
	}

	pool, err := sqldb.Open(path, options.PoolSize)
	if err != nil {
		return nil, err
	}

	db := &DB{
		pool: pool,
		log:  zerolog.Nop(),
	}
	if options.Logger != nil {
		db.log = options.Logger.With().Str("db", "wnsql").Logger()
	}
	return db, nil
}

// Close closes the database.
func (db *DB) Close() error {
	if err := db.pool.Close(); err != nil {
		return fmt.Errorf("closing wnsql database: %w", err)
	}
	return nil
}

// sqlID returns the synsetid column value for id.
func sqlID(id wordnet.SynsetID) (int64, error) {
	n, err := strconv.ParseInt(id.Format(wordnet.WNSQL), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", wordnet.ErrInvalidFormat, id.Format(wordnet.WNSQL))
	}
	return n, nil
}

// BySID returns the synset with the given ID.
func (db *DB) BySID(ctx context.Context, id wordnet.SynsetID) (*wordnet.Synset, error) {
	n, err := sqlID(id)
	if err != nil {
		return nil, err
	}

	var c *wordnet.SynsetCollection
	if err := sqldb.WithConn(ctx, db.pool, func(conn *sqlite.Conn) error {
		c, err = db.load(conn, []int64{n})
		return err
	}); err != nil {
		return nil, fmt.Errorf("reading synset %v: %w", id, err)
	}

	s, ok := c.BySID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return s, nil
}

// BySK returns the synset containing the sense with the given sense key.
func (db *DB) BySK(ctx context.Context, key string) (*wordnet.Synset, error) {
	key = strings.TrimSpace(key)

	var c *wordnet.SynsetCollection
	if err := sqldb.WithConn(ctx, db.pool, func(conn *sqlite.Conn) error {
		var ids []int64
		err := sqldb.Query(conn, sq.Select("synsetid").
			From("senses").
			Where(sq.Eq{"sensekey": key}).
			Limit(1),
			func(stmt *sqlite.Stmt) error {
				ids = append(ids, stmt.ColumnInt64(0))
				return nil
			})
		if err != nil {
			return err
		}
		c, err = db.load(conn, ids)
		return err
	}); err != nil {
		return nil, fmt.Errorf("reading sense key %q: %w", key, err)
	}

	s, ok := c.BySK(key)
	if !ok {
		return nil, fmt.Errorf("%w: sense key %q", ErrNotFound, key)
	}
	return s, nil
}

// ByTerm returns the synsets containing lemma in the order of their IDs.
// Case and whitespace in lemma are folded. If pos is the zero POS synsets of
// every part of speech are returned.
func (db *DB) ByTerm(ctx context.Context, lemma string, pos wordnet.POS) (*wordnet.SynsetCollection, error) {
	lemma = strings.ToLower(folding.Spaces(lemma))

	where := sq.And{sq.Eq{"words.lemma": lemma}}
	if pos != 0 {
		where = append(where, sq.Eq{"synsets.pos": pos.String()})
	}

	var c *wordnet.SynsetCollection
	if err := sqldb.WithConn(ctx, db.pool, func(conn *sqlite.Conn) error {
		var ids []int64
		err := sqldb.Query(conn, sq.Select("senses.synsetid").
			Distinct().
			From("senses").
			Join("words ON words.wordid = senses.wordid").
			Join("synsets ON synsets.synsetid = senses.synsetid").
			Where(where).
			OrderBy("senses.synsetid"),
			func(stmt *sqlite.Stmt) error {
				ids = append(ids, stmt.ColumnInt64(0))
				return nil
			})
		if err != nil {
			return err
		}
		c, err = db.load(conn, ids)
		return err
	}); err != nil {
		return nil, fmt.Errorf("reading term %q: %w", lemma, err)
	}
	return c, nil
}

// All returns every synset in the database in the order of their IDs.
func (db *DB) All(ctx context.Context) (*wordnet.SynsetCollection, error) {
	var c *wordnet.SynsetCollection
	if err := sqldb.WithConn(ctx, db.pool, func(conn *sqlite.Conn) error {
		var ids []int64
		err := sqldb.Query(conn, sq.Select("synsetid").From("synsets").OrderBy("synsetid"),
			func(stmt *sqlite.Stmt) error {
				ids = append(ids, stmt.ColumnInt64(0))
				return nil
			})
		if err != nil {
			return err
		}
		c, err = db.load(conn, ids)
		return err
	}); err != nil {
		return nil, fmt.Errorf("reading synsets: %w", err)
	}
	return c, nil
}

// TagCount returns the sum of the tag counts of the senses of a synset.
func (db *DB) TagCount(ctx context.Context, id wordnet.SynsetID) (int, error) {
	n, err := sqlID(id)
	if err != nil {
		return 0, err
	}

	var found bool
	var count int
	if err := sqldb.WithConn(ctx, db.pool, func(conn *sqlite.Conn) error {
		err := sqldb.Query(conn, sq.Select("synsetid").
			From("synsets").
			Where(sq.Eq{"synsetid": n}),
			func(*sqlite.Stmt) error {
				found = true
				return nil
			})
		if err != nil || !found {
			return err
		}
		return sqldb.Query(conn, sq.Select("COALESCE(SUM(tagcount), 0)").
			From("senses").
			Where(sq.Eq{"synsetid": n}),
			func(stmt *sqlite.Stmt) error {
				count = stmt.ColumnInt(0)
				return nil
			})
	}); err != nil {
		return 0, fmt.Errorf("reading tag count of %v: %w", id, err)
	}
	if !found {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return count, nil
}

// load reads the synsets with the given synsetid values. The synsets are
// added to the returned collection in the order of ids once they are fully
// populated.
func (db *DB) load(conn *sqlite.Conn, ids []int64) (*wordnet.SynsetCollection, error) {
	c := wordnet.NewSynsetCollection()
	if len(ids) == 0 {
		return c, nil
	}

	byNum := make(map[int64]*wordnet.Synset, len(ids))
	err := sqldb.QueryIn(conn, ids, func(chunk []int64) sq.Sqlizer {
		return sq.Select("synsetid", "definition").
			From("synsets").
			Where(sq.Eq{"synsetid": chunk})
	},
		func(stmt *sqlite.Stmt) error {
			n := stmt.ColumnInt64(0)
			id, err := wordnet.Parse(strconv.FormatInt(n, 10))
			if err != nil {
				db.log.Debug().Int64("synsetid", n).Err(err).Msg("skipping synset")
				return nil
			}
			s := wordnet.NewSynset(id)
			if def := strings.TrimSpace(stmt.ColumnText(1)); def != "" {
				s.SetDefinition(def)
			}
			byNum[n] = s
			return nil
		})
	if err != nil {
		return nil, err
	}

	// A synset's senses never span chunks so their order holds.
	err = sqldb.QueryIn(conn, ids, func(chunk []int64) sq.Sqlizer {
		return sq.Select("senses.synsetid", "words.lemma", "senses.sensekey", "senses.tagcount").
			From("senses").
			Join("words ON words.wordid = senses.wordid").
			Where(sq.Eq{"senses.synsetid": chunk}).
			OrderBy("senses.synsetid", "senses.senseid")
	},
		func(stmt *sqlite.Stmt) error {
			s, ok := byNum[stmt.ColumnInt64(0)]
			if !ok {
				return nil
			}
			s.AddLemma(stmt.ColumnText(1))
			if key := stmt.ColumnText(2); key != "" {
				s.AddKey(key)
			}
			s.SetTagCount(s.TagCount() + stmt.ColumnInt(3))
			return nil
		})
	if err != nil {
		return nil, err
	}

	err = sqldb.QueryIn(conn, ids, func(chunk []int64) sq.Sqlizer {
		return sq.Select("synsetid", "sample").
			From("samples").
			Where(sq.Eq{"synsetid": chunk}).
			OrderBy("synsetid", "sampleid")
	},
		func(stmt *sqlite.Stmt) error {
			if s, ok := byNum[stmt.ColumnInt64(0)]; ok {
				s.AddExample(stmt.ColumnText(1))
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	for _, n := range ids {
		if s, ok := byNum[n]; ok {
			c.Add(s)
		}
	}
	return c, nil
}
