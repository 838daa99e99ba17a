package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"binding-generator/internal/common"
)

// DefaultReturnName names a callable's return field when the schema does not.
const DefaultReturnName = "result"

// LoadFile loads and parses a YAML or JSON schema file from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse parses YAML (or JSON) data into a normalized Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	Normalize(&doc)

	return &doc, nil
}

// Normalize fills in defaults: the schema version, field keys, callable wire
// names and return field names, and splits callable params into required and
// optional lists.
func Normalize(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}

	for i := range doc.Objects {
		for j := range doc.Objects[i].Fields {
			normalizeField(&doc.Objects[i].Fields[j])
		}
	}

	for i := range doc.Callables {
		normalizeCallable(&doc.Callables[i])
	}
}

func normalizeField(f *Field) {
	if f.Key == "" {
		f.Key = f.Name
	}
}

func normalizeCallable(c *Callable) {
	if c.WireName == "" {
		c.WireName = common.LowerCamel(c.Name)
	}

	if c.Returns.Name == "" {
		c.Returns.Name = DefaultReturnName
	}

	normalizeField(&c.Returns)

	// Params are the source of truth; a second Normalize must not duplicate.
	c.Required, c.Optional = nil, nil

	for i := range c.Params {
		p := &c.Params[i]
		normalizeField(p)

		if p.Optional {
			c.Optional = append(c.Optional, *p)
		} else {
			c.Required = append(c.Required, *p)
		}
	}
}

// Marshal serializes a Document to YAML.
func Marshal(doc *Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteFile writes a Document to the given path.
func WriteFile(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
