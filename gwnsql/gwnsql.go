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

// Package gwnsql reads sense-tagged glosses from a Gloss WordNet SQL
// database. Synset IDs are stored in the gloss corpus encoding (e.g.
// "n00791078").
package gwnsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/gloss"
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

// DB is a read-only Gloss WordNet SQL database. It is safe for concurrent
// use.
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
		db.log = options.Logger.With().Str("db", "gwnsql").Logger()
	}
	return db, nil
}

// Close closes the database.
func (db *DB) Close() error {
	if err := db.pool.Close(); err != nil {
		return fmt.Errorf("closing gloss database: %w", err)
	}
	return nil
}

// BySID returns the synset with the given ID.
func (db *DB) BySID(ctx context.Context, id wordnet.SynsetID) (*gloss.Synset, error) {
	sid := id.Format(wordnet.GlossWN)

	c, err := db.query(ctx, sq.Select("id").From("synset").Where(sq.Eq{"id": sid}))
	if err != nil {
		return nil, fmt.Errorf("reading synset %q: %w", sid, err)
	}
	s, ok := c.BySID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, sid)
	}
	return s, nil
}

// BySK returns the synset containing the sense with the given sense key.
func (db *DB) BySK(ctx context.Context, key string) (*gloss.Synset, error) {
	key = strings.TrimSpace(key)

	c, err := db.query(ctx, sq.Select("sid").From("sensekey").Where(sq.Eq{"sensekey": key}).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("reading sense key %q: %w", key, err)
	}
	s, ok := c.BySK(key)
	if !ok {
		return nil, fmt.Errorf("%w: sense key %q", ErrNotFound, key)
	}
	return s, nil
}

// ByTerm returns the synsets containing term. The comparison ignores case
// and folds whitespace.
func (db *DB) ByTerm(ctx context.Context, term string) (*gloss.Collection, error) {
	term = strings.ToLower(folding.Spaces(term))

	c, err := db.query(ctx, sq.Select("sid").
		Distinct().
		From("term").
		Where(sq.Expr("lower(term) = ?", term)).
		OrderBy("sid"))
	if err != nil {
		return nil, fmt.Errorf("reading term %q: %w", term, err)
	}
	return c, nil
}

// All returns every synset in the database.
func (db *DB) All(ctx context.Context) (*gloss.Collection, error) {
	c, err := db.query(ctx, sq.Select("id").From("synset").OrderBy("id"))
	if err != nil {
		return nil, fmt.Errorf("reading synsets: %w", err)
	}
	return c, nil
}

// query runs q, which selects synset IDs, and loads the synsets.
func (db *DB) query(ctx context.Context, q sq.SelectBuilder) (*gloss.Collection, error) {
	var c *gloss.Collection
	err := sqldb.WithConn(ctx, db.pool, func(conn *sqlite.Conn) error {
		var sids []string
		if err := sqldb.Query(conn, q, func(stmt *sqlite.Stmt) error {
			sids = append(sids, stmt.ColumnText(0))
			return nil
		}); err != nil {
			return err
		}

		var err error
		c, err = db.load(conn, sids)
		return err
	})
	return c, err
}

// loader holds the state of a single load.
type loader struct {
	conn *sqlite.Conn
	log  zerolog.Logger

	sids    []string
	synsets map[string]*gloss.Synset
	glosses map[int64]*gloss.Gloss
	gids    []int64
	items   map[int64]*gloss.Item
}

// load reads the synsets with the given IDs. Synsets are added to the
// returned collection in the order of sids once they are fully populated.
func (db *DB) load(conn *sqlite.Conn, sids []string) (*gloss.Collection, error) {
	l := &loader{
		conn:    conn,
		log:     db.log,
		sids:    sids,
		synsets: make(map[string]*gloss.Synset, len(sids)),
		glosses: map[int64]*gloss.Gloss{},
		items:   map[int64]*gloss.Item{},
	}

	c := gloss.NewCollection()
	if len(sids) == 0 {
		return c, nil
	}

	for _, step := range []func() error{
		l.loadSynsets,
		l.loadTerms,
		l.loadKeys,
		l.loadRaw,
		l.loadGlosses,
		l.loadItems,
		l.loadTags,
	} {
		if err := step(); err != nil {
			return nil, err
		}
	}

	for _, sid := range sids {
		s, ok := l.synsets[sid]
		if !ok {
			continue
		}
		for _, g := range s.Glosses() {
			switch g.Category() {
			case gloss.CategoryDef:
				s.AddDefinition(g.Text())
			case gloss.CategoryEx:
				s.AddExample(g.Text())
			}
		}
		c.Add(s)
	}
	return c, nil
}

func (l *loader) loadSynsets() error {
	return sqldb.QueryIn(l.conn, l.sids, func(chunk []string) sq.Sqlizer {
		return sq.Select("id").
			From("synset").
			Where(sq.Eq{"id": chunk})
	},
		func(stmt *sqlite.Stmt) error {
			sid := stmt.ColumnText(0)
			id, err := wordnet.Parse(sid)
			if err != nil {
				l.log.Debug().Str("sid", sid).Err(err).Msg("skipping synset")
				return nil
			}
			l.synsets[sid] = gloss.NewSynset(id)
			return nil
		})
}

func (l *loader) loadTerms() error {
	return sqldb.QueryIn(l.conn, l.sids, func(chunk []string) sq.Sqlizer {
		return sq.Select("sid", "term").
			From("term").
			Where(sq.Eq{"sid": chunk}).
			OrderBy("rowid")
	},
		func(stmt *sqlite.Stmt) error {
			if s, ok := l.synsets[stmt.ColumnText(0)]; ok {
				s.AddLemma(strings.TrimSpace(stmt.ColumnText(1)))
			}
			return nil
		})
}

func (l *loader) loadKeys() error {
	return sqldb.QueryIn(l.conn, l.sids, func(chunk []string) sq.Sqlizer {
		return sq.Select("sid", "sensekey").
			From("sensekey").
			Where(sq.Eq{"sid": chunk}).
			OrderBy("rowid")
	},
		func(stmt *sqlite.Stmt) error {
			if s, ok := l.synsets[stmt.ColumnText(0)]; ok {
				s.AddKey(strings.TrimSpace(stmt.ColumnText(1)))
			}
			return nil
		})
}

func (l *loader) loadRaw() error {
	return sqldb.QueryIn(l.conn, l.sids, func(chunk []string) sq.Sqlizer {
		return sq.Select("sid", "cat", "gloss").
			From("gloss_raw").
			Where(sq.Eq{"sid": chunk}).
			OrderBy("rowid")
	},
		func(stmt *sqlite.Stmt) error {
			if s, ok := l.synsets[stmt.ColumnText(0)]; ok {
				s.AddRawGloss(stmt.ColumnText(1), stmt.ColumnText(2))
			}
			return nil
		})
}

func (l *loader) loadGlosses() error {
	return sqldb.QueryIn(l.conn, l.sids, func(chunk []string) sq.Sqlizer {
		return sq.Select("id", "origid", "sid", "cat").
			From("gloss").
			Where(sq.Eq{"sid": chunk}).
			OrderBy("id")
	},
		func(stmt *sqlite.Stmt) error {
			s, ok := l.synsets[stmt.ColumnText(2)]
			if !ok {
				return nil
			}
			gid := stmt.ColumnInt64(0)
			l.glosses[gid] = s.AddGloss(stmt.ColumnText(1), stmt.ColumnText(3), int(gid))
			l.gids = append(l.gids, gid)
			return nil
		})
}

func (l *loader) loadItems() error {
	if len(l.gids) == 0 {
		return nil
	}
	// The items of a gloss never span chunks so their order holds.
	return sqldb.QueryIn(l.conn, l.gids, func(chunk []int64) sq.Sqlizer {
		return sq.Select(
			"id", "gid", "tag", "lemma", "pos", "cat", "coll", "rdf", "sep", "text", "origid",
		).
			From("glossitem").
			Where(sq.Eq{"gid": chunk}).
			OrderBy("gid", "ord")
	},
		func(stmt *sqlite.Stmt) error {
			g, ok := l.glosses[stmt.ColumnInt64(1)]
			if !ok {
				return nil
			}
			itemID := stmt.ColumnInt64(0)
			l.items[itemID] = g.AddItem(gloss.ItemFields{
				ItemID:   int(itemID),
				Tag:      stmt.ColumnText(2),
				Lemma:    stmt.ColumnText(3),
				POS:      stmt.ColumnText(4),
				Category: stmt.ColumnText(5),
				Coll:     stmt.ColumnText(6),
				RDF:      stmt.ColumnText(7),
				Sep:      stmt.ColumnText(8),
				Text:     stmt.ColumnText(9),
				OrigID:   stmt.ColumnText(10),
			})
			return nil
		})
}

func (l *loader) loadTags() error {
	if len(l.gids) == 0 {
		return nil
	}
	return sqldb.QueryIn(l.conn, l.gids, func(chunk []int64) sq.Sqlizer {
		return sq.Select(
			"id", "cat", "tag", "glob", "glob_lemma", "glob_id", "coll", "sid", "gid", "sk", "origid", "lemma", "itemid",
		).
			From("sensetag").
			Where(sq.Eq{"gid": chunk}).
			OrderBy("id")
	},
		func(stmt *sqlite.Stmt) error {
			tagID := stmt.ColumnInt64(0)
			g, ok := l.glosses[stmt.ColumnInt64(8)]
			if !ok {
				return nil
			}
			item, ok := l.items[stmt.ColumnInt64(12)]
			if !ok {
				l.log.Debug().Int64("tag", tagID).Int64("item", stmt.ColumnInt64(12)).Msg("skipping tag of unknown item")
				return nil
			}

			f := gloss.TagFields{
				TagID:     int(tagID),
				Category:  stmt.ColumnText(1),
				Tag:       stmt.ColumnText(2),
				Glob:      stmt.ColumnText(3),
				GlobLemma: stmt.ColumnText(4),
				GlobID:    stmt.ColumnText(5),
				Coll:      stmt.ColumnText(6),
				SenseKey:  stmt.ColumnText(9),
				OrigID:    stmt.ColumnText(10),
				Lemma:     stmt.ColumnText(11),
			}
			if sid := strings.TrimSpace(stmt.ColumnText(7)); sid != "" {
				id, err := wordnet.Parse(sid)
				if err != nil {
					l.log.Debug().Int64("tag", tagID).Str("sid", sid).Err(err).Msg("ignoring tag synset")
				} else {
					f.SID = id
				}
			}

			if _, err := g.TagItem(item, f); err != nil {
				// gid and itemid disagree.
				l.log.Debug().Int64("tag", tagID).Err(err).Msg("skipping tag")
			}
			return nil
		})
}
