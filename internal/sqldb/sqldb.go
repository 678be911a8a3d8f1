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

// Package sqldb holds the SQLite plumbing shared by the database readers.
package sqldb

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// MaxArgs is the largest number of values QueryIn binds in one statement.
// SQLite allows at most 32766 parameters per statement.
const MaxArgs = 30000

// Open opens a read-only connection pool for the database at path. If
// poolSize is not positive the pool holds one connection per CPU.
func Open(path string, poolSize int) (*sqlitex.Pool, error) {
	// The pool opens connections lazily so check that the database is
	// there up front.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	if poolSize <= 0 {
		poolSize = runtime.NumCPU()
	}
	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		Flags:    sqlite.OpenReadOnly,
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return pool, nil
}

// WithConn runs fn with a connection taken from pool.
func WithConn(ctx context.Context, pool *sqlitex.Pool, fn func(*sqlite.Conn) error) error {
	conn, err := pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("taking connection: %w", err)
	}
	defer pool.Put(conn)
	return fn(conn)
}

// Query builds the query q and calls fn for every resulting row.
func Query(conn *sqlite.Conn, q sq.Sqlizer, fn func(*sqlite.Stmt) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}
	if err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args:       args,
		ResultFunc: fn,
	}); err != nil {
		return fmt.Errorf("executing %q: %w", query, err)
	}
	return nil
}

// QueryIn runs the query built by q once for each chunk of at most MaxArgs
// values and calls fn for every resulting row. q usually filters with
// squirrel.Eq on the chunk. Rows are returned chunk by chunk, so ordering
// only holds within rows of the same chunk.
func QueryIn[T any](conn *sqlite.Conn, values []T, q func(chunk []T) sq.Sqlizer, fn func(*sqlite.Stmt) error) error {
	for chunk := range slices.Chunk(values, MaxArgs) {
		if err := Query(conn, q(chunk), fn); err != nil {
			return err
		}
	}
	return nil
}
