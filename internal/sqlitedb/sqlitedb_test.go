package sqlitedb

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

var testMigrations = fstest.MapFS{
	"00001_notes.sql": {Data: []byte(`-- +goose Up
CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT NOT NULL);

-- +goose Down
DROP TABLE notes;
`)},
}

func TestOpenMigratesInMemory(t *testing.T) {
	db, err := Open(context.Background(), Memory, testMigrations)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO notes (body) VALUES ('hi')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestOpenIsIdempotentAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "site.db")

	db, err := Open(context.Background(), path, testMigrations)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO notes (body) VALUES ('kept')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(context.Background(), path, testMigrations)
	require.NoError(t, err)
	defer db.Close()

	var body string
	require.NoError(t, db.QueryRow(`SELECT body FROM notes`).Scan(&body))
	require.Equal(t, "kept", body)
}

func TestOpenRejectsBrokenMigration(t *testing.T) {
	broken := fstest.MapFS{
		"00001_bad.sql": {Data: []byte("-- +goose Up\nCREATE TABLE;\n")},
	}
	_, err := Open(context.Background(), Memory, broken)
	require.Error(t, err)
}
