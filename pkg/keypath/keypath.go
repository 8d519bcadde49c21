// Package keypath splits and joins delimiter-separated message keys such as
// "menu.file.open".
package keypath

import (
	"errors"
	"strings"
)

// DefaultDelimiter separates the segments of a key path.
const DefaultDelimiter = "."

var (
	ErrEmpty        = errors.New("keypath: empty key")
	ErrEmptySegment = errors.New("keypath: empty segment")
)

// Split breaks path into its segments. An empty delimiter falls back to
// DefaultDelimiter.
func Split(path, delim string) ([]string, error) {
	if path == "" {
		return nil, ErrEmpty
	}
	if delim == "" {
		delim = DefaultDelimiter
	}
	segments := strings.Split(path, delim)
	for _, s := range segments {
		if s == "" {
			return nil, ErrEmptySegment
		}
	}
	return segments, nil
}

// Join is the inverse of Split.
func Join(segments []string, delim string) string {
	if delim == "" {
		delim = DefaultDelimiter
	}
	return strings.Join(segments, delim)
}
