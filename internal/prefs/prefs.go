// Package prefs is a small sqlite-backed key/value store for local UI
// preferences.
package prefs

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/RAAHUL-tech/portfolio/internal/sqlitedb"
	"github.com/RAAHUL-tech/portfolio/internal/theme"
)

// ErrNotFound is returned by Get for keys that were never written. It wraps
// theme.ErrNoValue so the theme policy treats it as "no preference".
var ErrNotFound = fmt.Errorf("prefs: key not found: %w", theme.ErrNoValue)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	db *sql.DB
}

var _ theme.Store = (*Store)(nil)

// Open opens (creating if needed) the preference database at path.
// ":memory:" gives a private in-memory store.
func Open(path string) (*Store, error) {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return nil, err
	}
	db, err := sqlitedb.Open(context.Background(), path, sub)
	if err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read preference %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.DateTime))
	if err != nil {
		return fmt.Errorf("write preference %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
