package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/Acizza/anup/pkg/logger"
	"github.com/Acizza/anup/pkg/series"
	"github.com/Acizza/anup/pkg/storage"
	"github.com/Acizza/anup/pkg/storage/sqlite/schema/gen/model"
	"github.com/Acizza/anup/pkg/storage/sqlite/schema/gen/table"
)

// seriesRow is the join destination for one tracked series.
type seriesRow struct {
	model.SeriesConfigs
	Info  model.SeriesInfo
	Entry model.SeriesEntries
}

// SaveSeries upserts the config, info and entry rows of one series in one
// transaction. A crash can never leave an entry without its config.
func (s *SQLite) SaveSeries(ctx context.Context, sr series.Series) error {
	log := logger.FromCtx(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmts := []sqlite.InsertStatement{
		upsertConfigStmt(configToModel(sr.Config)),
		upsertInfoStmt(infoToModel(sr.Info)),
		upsertEntryStmt(entryToModel(sr.Entry)),
	}

	for _, stmt := range stmts {
		if _, err := stmt.ExecContext(ctx, tx); err != nil {
			tx.Rollback()
			log.Errorw("failed to save series", "id", sr.Config.ID, "error", err)
			return fmt.Errorf("failed to save series: %w", err)
		}
	}

	return tx.Commit()
}

// GetSeries loads one series by id.
func (s *SQLite) GetSeries(ctx context.Context, id int32) (*series.Series, error) {
	return s.loadSeries(ctx, table.SeriesConfigs.ID.EQ(sqlite.Int32(id)))
}

// GetSeriesByNickname loads one series by its unique nickname.
func (s *SQLite) GetSeriesByNickname(ctx context.Context, nickname string) (*series.Series, error) {
	return s.loadSeries(ctx, table.SeriesConfigs.Nickname.EQ(sqlite.String(nickname)))
}

// ListSeries loads every tracked series, ordered by nickname.
func (s *SQLite) ListSeries(ctx context.Context) ([]series.Series, error) {
	log := logger.FromCtx(ctx)

	var rows []seriesRow
	stmt := seriesSelect().ORDER_BY(table.SeriesConfigs.Nickname.ASC())

	if err := stmt.QueryContext(ctx, s.db, &rows); err != nil {
		log.Errorw("failed to list series", "error", err)
		return nil, fmt.Errorf("failed to list series: %w", err)
	}

	list := make([]series.Series, 0, len(rows))
	for _, row := range rows {
		sr, err := rowToSeries(row)
		if err != nil {
			return nil, err
		}
		list = append(list, sr)
	}

	return list, nil
}

// DeleteSeries removes a series. The info and entry rows cascade with the
// config.
func (s *SQLite) DeleteSeries(ctx context.Context, id int32) error {
	stmt := table.SeriesConfigs.DELETE().WHERE(table.SeriesConfigs.ID.EQ(sqlite.Int32(id)))

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("failed to delete series: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s *SQLite) loadSeries(ctx context.Context, where sqlite.BoolExpression) (*series.Series, error) {
	var row seriesRow
	stmt := seriesSelect().WHERE(where)

	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get series: %w", err)
	}

	sr, err := rowToSeries(row)
	if err != nil {
		return nil, err
	}

	return &sr, nil
}

func seriesSelect() sqlite.SelectStatement {
	return table.SeriesConfigs.
		SELECT(
			table.SeriesConfigs.AllColumns,
			table.SeriesInfo.AllColumns,
			table.SeriesEntries.AllColumns,
		).
		FROM(
			table.SeriesConfigs.
				INNER_JOIN(table.SeriesInfo, table.SeriesConfigs.ID.EQ(table.SeriesInfo.ID)).
				INNER_JOIN(table.SeriesEntries, table.SeriesConfigs.ID.EQ(table.SeriesEntries.ID)),
		)
}

func rowToSeries(row seriesRow) (series.Series, error) {
	entry, err := entryFromModel(row.Entry)
	if err != nil {
		return series.Series{}, err
	}

	return series.Series{
		Config: configFromModel(row.SeriesConfigs),
		Info:   infoFromModel(row.Info),
		Entry:  entry,
	}, nil
}

func upsertConfigStmt(m model.SeriesConfigs) sqlite.InsertStatement {
	return table.SeriesConfigs.
		INSERT(table.SeriesConfigs.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.SeriesConfigs.ID).
		DO_UPDATE(sqlite.SET(table.SeriesConfigs.MutableColumns.SET(sqlite.ROW(asExpressions(table.SeriesConfigs.EXCLUDED.MutableColumns)...))))
}

func upsertInfoStmt(m model.SeriesInfo) sqlite.InsertStatement {
	return table.SeriesInfo.
		INSERT(table.SeriesInfo.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.SeriesInfo.ID).
		DO_UPDATE(sqlite.SET(table.SeriesInfo.MutableColumns.SET(sqlite.ROW(asExpressions(table.SeriesInfo.EXCLUDED.MutableColumns)...))))
}

func upsertEntryStmt(m model.SeriesEntries) sqlite.InsertStatement {
	return table.SeriesEntries.
		INSERT(table.SeriesEntries.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.SeriesEntries.ID).
		DO_UPDATE(sqlite.SET(table.SeriesEntries.MutableColumns.SET(sqlite.ROW(asExpressions(table.SeriesEntries.EXCLUDED.MutableColumns)...))))
}

func asExpressions(columns sqlite.ColumnList) []sqlite.Expression {
	expressions := make([]sqlite.Expression, len(columns))
	for i, c := range columns {
		expressions[i] = c
	}
	return expressions
}
