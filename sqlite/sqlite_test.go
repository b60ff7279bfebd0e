package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/zealdoc/sqlite"
	"github.com/fwojciec/zealdoc/sqlite/sqlitetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("opens an index with a searchIndex table", func(t *testing.T) {
		t.Parallel()

		docset := sqlitetest.NewDocset(t, t.TempDir(), "Go")

		db := sqlite.NewDB(docset.IndexPath())
		err := db.Open(context.Background())
		require.NoError(t, err)
		defer db.Close()

		rows, err := db.QueryContext(context.Background(), "SELECT name FROM searchIndex")
		require.NoError(t, err)
		rows.Close()
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.dsidx")

		db := sqlite.NewDB(path)
		err := db.Open(context.Background())
		require.Error(t, err)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "open must not create the file")
	})

	t.Run("returns error for a file that is not a database", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docSet.dsidx")
		require.NoError(t, os.WriteFile(path, []byte("this is definitely not a sqlite database file"), 0644))

		db := sqlite.NewDB(path)
		err := db.Open(context.Background())
		require.Error(t, err)
	})

	t.Run("returns error when searchIndex is missing", func(t *testing.T) {
		t.Parallel()

		// SQLite treats an empty file as an empty database.
		empty := filepath.Join(t.TempDir(), "empty.dsidx")
		require.NoError(t, os.WriteFile(empty, nil, 0644))

		db := sqlite.NewDB(empty)
		err := db.Open(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "searchIndex")
	})

	t.Run("opens paths with spaces and URI characters", func(t *testing.T) {
		t.Parallel()

		docset := sqlitetest.NewDocset(t, filepath.Join(t.TempDir(), "my docs #1?"), "C++")

		db := sqlite.NewDB(docset.IndexPath())
		err := db.Open(context.Background())
		require.NoError(t, err)
		db.Close()
	})

	t.Run("does not allow writes", func(t *testing.T) {
		t.Parallel()

		docset := sqlitetest.NewDocset(t, t.TempDir(), "Go")

		db := sqlite.NewDB(docset.IndexPath())
		require.NoError(t, db.Open(context.Background()))
		defer db.Close()

		rows, err := db.QueryContext(context.Background(), "INSERT INTO searchIndex (name, type, path) VALUES ('a', 'b', 'c') RETURNING id")
		if err == nil {
			rows.Next()
			err = rows.Err()
			rows.Close()
		}
		assert.Error(t, err)
	})
}
