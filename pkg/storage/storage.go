// Package storage defines the local cache contract. The cache is the
// authoritative copy of watch state; the remote service only ever sees what
// has been pushed from here.
package storage

import (
	"context"
	"errors"

	"github.com/Acizza/anup/pkg/series"
)

var (
	// ErrNotFound means no row matched the lookup.
	ErrNotFound = errors.New("not found in storage")
	// ErrLocked means another process instance already holds the store
	// open. The caller must fail fast rather than risk interleaved writes.
	ErrLocked = errors.New("storage is locked by another process")
	// ErrFatalMigration means a schema upgrade failed partway. The store
	// may be inconsistent and the process must abort.
	ErrFatalMigration = errors.New("storage migration failed")
)

// Storage persists tracked series. All writes are transactional; a write is
// observable to subsequent reads only after commit.
type Storage interface {
	SeriesStorage
	EntryStorage

	Close() error
}

type SeriesStorage interface {
	// SaveSeries upserts the config, info and entry rows of one series in a
	// single transaction.
	SaveSeries(ctx context.Context, s series.Series) error
	GetSeries(ctx context.Context, id int32) (*series.Series, error)
	GetSeriesByNickname(ctx context.Context, nickname string) (*series.Series, error)
	// ListSeries loads every tracked series, ordered by nickname.
	ListSeries(ctx context.Context) ([]series.Series, error)
	// DeleteSeries removes a series; its info and entry rows cascade.
	DeleteSeries(ctx context.Context, id int32) error
}

type EntryStorage interface {
	SaveEntry(ctx context.Context, entry series.Entry) error
	GetEntry(ctx context.Context, id int32) (*series.Entry, error)
	// EntriesNeedingSync returns dirty entries in insertion order for batch
	// pushes.
	EntriesNeedingSync(ctx context.Context) ([]series.Entry, error)
}
