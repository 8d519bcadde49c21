// Package locales encodes language documents and writes them as
// <lang>.<ext> files.
package locales

import (
	"fmt"

	"sheetloc/internal/domain"
	"sheetloc/internal/domain/entities"
)

// Encoder serializes a document into one file format.
type Encoder interface {
	// Ext is the file extension without the dot; it doubles as the format name.
	Ext() string
	Encode(doc *entities.Document) ([]byte, error)
}

// EncoderFor returns the encoder registered for format.
func EncoderFor(format string) (Encoder, error) {
	switch format {
	case "json":
		return JSONEncoder{}, nil
	case "toml":
		return TOMLEncoder{}, nil
	case "yaml":
		return YAMLEncoder{}, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
}
