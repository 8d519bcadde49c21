package database

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"sheetloc/internal/domain"
	"sheetloc/internal/domain/entities"
)

// entryRow is one translation_entries row.
type entryRow struct {
	Key      string
	Language string
	Value    pgtype.Text
}

// pgtypeTextToString returns t.String when Valid, else "" (a missing cell).
func pgtypeTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// entriesToTable pivots long-form entries into a table with one column per
// language. Rows appear in the order their key is first seen.
func entriesToTable(keyColumn string, languages []string, entries []entryRow) (*entities.Table, error) {
	header := make([]string, 0, len(languages)+1)
	header = append(header, keyColumn)
	header = append(header, languages...)

	table := &entities.Table{Header: header, KeyColumn: keyColumn}
	if err := table.ValidateHeader(); err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(languages))
	for _, l := range languages {
		known[l] = true
	}

	index := make(map[string]int)
	for _, e := range entries {
		if !known[e.Language] {
			return nil, fmt.Errorf("%w: entry %q uses unknown language %q", domain.ErrTableParse, e.Key, e.Language)
		}
		i, ok := index[e.Key]
		if !ok {
			i = len(table.Rows)
			index[e.Key] = i
			table.Rows = append(table.Rows, entities.Row{keyColumn: e.Key})
		}
		table.Rows[i][e.Language] = pgtypeTextToString(e.Value)
	}
	return table, nil
}
