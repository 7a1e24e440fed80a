package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteFileName = "utm.sqlite"

// SQLiteKV persists keys in a single-table sqlite database under the
// profile directory. One process owns the profile; there is no
// multi-writer coordination.
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the profile database in dir.
func OpenSQLite(dir string) (*SQLiteKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, sqliteFileName))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate state table: %w", err)
	}
	return &SQLiteKV{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteKV) Close() error { return s.db.Close() }

func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT v FROM state WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLiteKV) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO state(k, v) VALUES(?, ?)`, key, value)
	return err
}

func (s *SQLiteKV) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM state WHERE k = ?`, key)
	return err
}
