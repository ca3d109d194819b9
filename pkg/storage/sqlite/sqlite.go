// Package sqlite stores tracked series in a single sqlite database next to
// the user's config. The file is held under an exclusive process lock; a
// second instance opening it fails fast instead of interleaving writes.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/gofrs/flock"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Acizza/anup/pkg/storage"
)

type SQLite struct {
	db   *sql.DB
	lock *flock.Flock
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the database at filePath, creating it when missing, takes the
// process lock and brings the schema up to date. Returns storage.ErrLocked
// when another instance holds the file and storage.ErrFatalMigration when a
// schema upgrade fails; the caller must not retry past the latter.
func New(filePath string) (*SQLite, error) {
	var lock *flock.Flock
	if filePath != ":memory:" {
		lock = flock.New(filePath + ".lock")

		held, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire storage lock: %w", err)
		}
		if !held {
			return nil, storage.ErrLocked
		}
	}

	db, err := sql.Open("sqlite3", filePath+"?_foreign_keys=on")
	if err != nil {
		unlock(lock)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// every connection to :memory: is a distinct database, so the pool must
	// stay on a single connection
	if filePath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		unlock(lock)
		return nil, fmt.Errorf("%w: %v", storage.ErrFatalMigration, err)
	}

	return &SQLite{db: db, lock: lock}, nil
}

// Close releases the database and the process lock.
func (s *SQLite) Close() error {
	err := s.db.Close()
	unlock(s.lock)
	return err
}

func unlock(lock *flock.Flock) {
	if lock != nil {
		lock.Unlock()
	}
}
