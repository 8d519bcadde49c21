package locales

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"sheetloc/internal/domain/entities"
)

// YAMLEncoder writes the document as a YAML mapping in document key order.
type YAMLEncoder struct{}

func (YAMLEncoder) Ext() string { return "yaml" }

func (YAMLEncoder) Encode(doc *entities.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(doc)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlNode(doc *entities.Document) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range doc.Keys() {
		node, _ := doc.Lookup(key)
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		if node.IsLeaf() {
			m.Content = append(m.Content, k, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: node.Value})
			continue
		}
		m.Content = append(m.Content, k, yamlNode(node.Children))
	}
	return m
}
