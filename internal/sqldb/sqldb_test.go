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

package sqldb_test

import (
	"context"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"zombiezen.com/go/sqlite"

	"github.com/ianlewis/go-wordnet/internal/sqldb"
	"github.com/ianlewis/go-wordnet/internal/testutil"
)

const numbers = `
CREATE TABLE numbers (n INTEGER PRIMARY KEY);
WITH RECURSIVE seq(x) AS (SELECT 1 UNION ALL SELECT x + 1 FROM seq WHERE x < 70000)
INSERT INTO numbers (n) SELECT x FROM seq;
`

func TestOpen_missing(t *testing.T) {
	t.Parallel()

	if _, err := sqldb.Open(filepath.Join(t.TempDir(), "missing.db"), 1); err == nil {
		t.Fatal("Open: expected error")
	}
}

func TestQueryIn(t *testing.T) {
	t.Parallel()

	pool, err := sqldb.Open(testutil.MakeDB(t, "numbers.db", numbers), 1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})

	tests := map[string]struct {
		values int
		chunks int
	}{
		"empty":    {values: 0, chunks: 0},
		"one":      {values: 1, chunks: 1},
		"limit":    {values: sqldb.MaxArgs, chunks: 1},
		"over":     {values: sqldb.MaxArgs + 1, chunks: 2},
		"multiple": {values: 70000, chunks: 3},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			values := make([]int64, tc.values)
			for i := range values {
				values[i] = int64(i + 1)
			}

			var chunks, rows int
			var sum int64
			err := sqldb.WithConn(context.Background(), pool, func(conn *sqlite.Conn) error {
				return sqldb.QueryIn(conn, values, func(chunk []int64) sq.Sqlizer {
					chunks++
					return sq.Select("n").From("numbers").Where(sq.Eq{"n": chunk})
				}, func(stmt *sqlite.Stmt) error {
					rows++
					sum += stmt.ColumnInt64(0)
					return nil
				})
			})
			if err != nil {
				t.Fatalf("QueryIn: %v", err)
			}

			if want, got := tc.chunks, chunks; want != got {
				t.Errorf("chunks: want %d, got %d", want, got)
			}
			if want, got := tc.values, rows; want != got {
				t.Errorf("rows: want %d, got %d", want, got)
			}
			n := int64(tc.values)
			if want, got := n*(n+1)/2, sum; want != got {
				t.Errorf("sum: want %d, got %d", want, got)
			}
		})
	}
}
