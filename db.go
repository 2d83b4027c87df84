package main

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"time"

	"github.com/RAAHUL-tech/portfolio/internal/sqlitedb"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// sqliteTime keeps stored timestamps comparable with SQLite's datetime().
const sqliteTime = time.DateTime

var db *sql.DB

func initDB(path string) error {
	migrations, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return err
	}

	conn, err := sqlitedb.Open(context.Background(), path, migrations)
	if err != nil {
		return err
	}

	db = conn
	return nil
}

func nowUTC() string {
	return clock().UTC().Format(sqliteTime)
}

// parseStoredTime reads timestamps written by nowUTC.
func parseStoredTime(raw string) time.Time {
	t, err := time.Parse(sqliteTime, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
