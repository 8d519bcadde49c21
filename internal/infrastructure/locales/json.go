package locales

import (
	"bytes"
	"encoding/json"

	"sheetloc/internal/domain/entities"
)

// JSONEncoder writes 2-space indented JSON that keeps the document's key
// order and leaves <, > and & unescaped.
type JSONEncoder struct{}

func (JSONEncoder) Ext() string { return "json" }

func (JSONEncoder) Encode(doc *entities.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(orderedJSON{doc}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type orderedJSON struct {
	doc *entities.Document
}

func (o orderedJSON) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONObject(&buf, o.doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONObject(buf *bytes.Buffer, doc *entities.Document) error {
	buf.WriteByte('{')
	for i, key := range doc.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(buf, key); err != nil {
			return err
		}
		buf.WriteByte(':')

		node, _ := doc.Lookup(key)
		if node.IsLeaf() {
			if err := writeJSONString(buf, node.Value); err != nil {
				return err
			}
			continue
		}
		if err := writeJSONObject(buf, node.Children); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
