package entities

import (
	"fmt"

	"sheetloc/internal/domain"
)

// Row maps a column name to its cell value.
type Row map[string]string

// Table is a parsed translation table: one header, one key column, and the
// data rows in input order.
type Table struct {
	Header    []string
	KeyColumn string
	Rows      []Row
}

// Languages returns every header field except the key column, in header order.
func (t *Table) Languages() []string {
	languages := make([]string, 0, len(t.Header))
	for _, field := range t.Header {
		if field == t.KeyColumn {
			continue
		}
		languages = append(languages, field)
	}
	return languages
}

// HasKeyColumn reports whether the header contains the key column.
func (t *Table) HasKeyColumn() bool {
	for _, field := range t.Header {
		if field == t.KeyColumn {
			return true
		}
	}
	return false
}

// ValidateHeader rejects empty or duplicated column names, both reported as
// table parse errors, and a header without the key column.
func (t *Table) ValidateHeader() error {
	if len(t.Header) == 0 {
		return domain.ErrEmptyTable
	}
	seen := make(map[string]bool, len(t.Header))
	for i, field := range t.Header {
		if field == "" {
			return fmt.Errorf("%w: %w: column %d", domain.ErrTableParse, domain.ErrEmptyColumn, i+1)
		}
		if seen[field] {
			return fmt.Errorf("%w: %w: %q", domain.ErrTableParse, domain.ErrDuplicateColumn, field)
		}
		seen[field] = true
	}
	if !t.HasKeyColumn() {
		return fmt.Errorf("%w: %q", domain.ErrKeyColumnMissing, t.KeyColumn)
	}
	return nil
}

// Key returns the row's key path ("" when absent).
func (r Row) Key(keyColumn string) string {
	return r[keyColumn]
}

// Value returns the cell for lang and whether it holds a translation.
// An absent cell and an empty cell are both reported as missing.
func (r Row) Value(lang string) (string, bool) {
	v, ok := r[lang]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
