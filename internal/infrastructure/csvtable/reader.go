// Package csvtable reads translation tables from comma-separated files with a
// single header row.
package csvtable

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"sheetloc/internal/domain"
	"sheetloc/internal/domain/entities"
	"sheetloc/internal/ports/output"
)

var _ output.TableSource = (*Reader)(nil)

// Reader loads a table from a CSV file on disk.
type Reader struct {
	path      string
	keyColumn string
	log       *zap.Logger
}

func NewReader(path, keyColumn string, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{path: path, keyColumn: keyColumn, log: log}
}

// Load reads the file and parses it. Any parse error fails the whole load.
// Bytes that are not UTF-8 are replaced with U+FFFD and reported as a warning.
func (r *Reader) Load(ctx context.Context) (*entities.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}

	if line, ok := firstInvalidLine(data); ok {
		r.log.Warn("table is not valid UTF-8, invalid bytes replaced",
			zap.String("path", r.path),
			zap.Int("line", line),
		)
	}

	table, err := Parse(bytes.NewReader(data), r.keyColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return table, nil
}

// firstInvalidLine returns the 1-based line holding the first byte sequence
// that is not UTF-8.
func firstInvalidLine(data []byte) (int, bool) {
	line := 1
	for i := 0; i < len(data); {
		c, size := utf8.DecodeRune(data[i:])
		if c == utf8.RuneError && size <= 1 {
			return line, true
		}
		if c == '\n' {
			line++
		}
		i += size
	}
	return 0, false
}

// Parse reads a header row followed by data rows. Blank lines are skipped;
// a UTF-8 byte order mark is dropped. Every malformed record is collected so
// the caller sees all of them at once.
func Parse(rd io.Reader, keyColumn string) (*entities.Table, error) {
	cr := csv.NewReader(transform.NewReader(rd, unicode.BOMOverride(unicode.UTF8.NewDecoder())))

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.ErrEmptyTable
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%w: %w", domain.ErrTableParse, err)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	table := &entities.Table{Header: header, KeyColumn: keyColumn}
	if err := table.ValidateHeader(); err != nil {
		return nil, err
	}

	var parseErrs []error
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("read table: %w", err)
			}
			parseErrs = append(parseErrs, err)
			continue
		}
		if len(parseErrs) > 0 {
			continue
		}

		row := make(entities.Row, len(header))
		for i, field := range header {
			row[field] = record[i]
		}
		table.Rows = append(table.Rows, row)
	}

	if len(parseErrs) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrTableParse, errors.Join(parseErrs...))
	}
	return table, nil
}
