package locales

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"

	"sheetloc/internal/domain/entities"
)

// TOMLEncoder writes the document as nested TOML tables. go-toml sorts map
// keys, so the output is stable but not in spreadsheet order.
type TOMLEncoder struct{}

func (TOMLEncoder) Ext() string { return "toml" }

func (TOMLEncoder) Encode(doc *entities.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(doc.ToMap()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
