package domain

import "errors"

// Domain errors.
var (
	ErrNoLanguages      = errors.New("no language columns found in table header")
	ErrKeyColumnMissing = errors.New("key column not found in table header")
	ErrDuplicateColumn  = errors.New("duplicate column in table header")
	ErrEmptyColumn      = errors.New("empty column name in table header")
	ErrTableParse       = errors.New("table parse failed")
	ErrEmptyTable       = errors.New("table has no header row")
	ErrUnknownFormat    = errors.New("unknown document format")
)
