package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sheetloc/internal/domain/entities"
	"sheetloc/internal/ports/output"
)

var _ output.TableSource = (*TableRepository)(nil)

// querier is the subset of *pgxpool.Pool the repository needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	selectLanguages = `SELECT code FROM translation_languages ORDER BY position, code`
	selectEntries   = `SELECT key, language, value FROM translation_entries ORDER BY id`
)

// TableRepository loads the translation table stored in PostgreSQL.
type TableRepository struct {
	q         querier
	keyColumn string
}

func NewTableRepository(q querier, keyColumn string) *TableRepository {
	return &TableRepository{q: q, keyColumn: keyColumn}
}

func (r *TableRepository) Load(ctx context.Context) (*entities.Table, error) {
	rows, err := r.q.Query(ctx, selectLanguages)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	languages, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	rows, err = r.q.Query(ctx, selectEntries)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entryRow])
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entriesToTable(r.keyColumn, languages, entries)
}
