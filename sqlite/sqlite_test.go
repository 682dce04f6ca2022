package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/dtomczyk/placelist/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("opens an in-memory database", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		assert.NoError(t, db.Close())
	})

	t.Run("opens a file-backed database", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "placelist.db")
		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		assert.NoError(t, db.Close())

		// Reopening finds the schema already in place.
		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		assert.NoError(t, db.Close())
	})

	t.Run("close without open is a no-op", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		assert.NoError(t, db.Close())
	})
}
