package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/Acizza/anup/pkg/series"
	"github.com/Acizza/anup/pkg/storage"
	"github.com/Acizza/anup/pkg/storage/sqlite/schema/gen/model"
	"github.com/Acizza/anup/pkg/storage/sqlite/schema/gen/table"
)

// SaveEntry upserts a single watch entry. The series config must already
// exist; entries cannot outlive their config.
func (s *SQLite) SaveEntry(ctx context.Context, entry series.Entry) error {
	stmt := upsertEntryStmt(entryToModel(entry))

	if _, err := stmt.ExecContext(ctx, s.db); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	return nil
}

// GetEntry loads one watch entry by series id.
func (s *SQLite) GetEntry(ctx context.Context, id int32) (*series.Entry, error) {
	var row model.SeriesEntries

	stmt := table.SeriesEntries.
		SELECT(table.SeriesEntries.AllColumns).
		FROM(table.SeriesEntries).
		WHERE(table.SeriesEntries.ID.EQ(sqlite.Int32(id)))

	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	entry, err := entryFromModel(row)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// EntriesNeedingSync returns dirty entries in insertion order so batch
// pushes replay local changes deterministically.
func (s *SQLite) EntriesNeedingSync(ctx context.Context) ([]series.Entry, error) {
	var rows []model.SeriesEntries

	stmt := table.SeriesEntries.
		SELECT(table.SeriesEntries.AllColumns).
		FROM(table.SeriesEntries).
		WHERE(table.SeriesEntries.NeedsSync.IS_TRUE()).
		ORDER_BY(table.SeriesEntries.ID.ASC())

	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		return nil, fmt.Errorf("failed to list entries needing sync: %w", err)
	}

	entries := make([]series.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := entryFromModel(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
