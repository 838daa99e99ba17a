package schema

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"binding-generator/pkg/wire"
)

// TypeList is the ordered candidate list of a field. It can be unmarshaled from
// various YAML formats:
//   - Single string: "integer"
//   - Union string: "integer | string" or "Integer or String"
//   - Nested lists: "list of list of PhotoSize", "Array of Integer"
//   - Array of strings: [integer, string]
//   - Structured items: {name: integer, depth: 2}
type TypeList []wire.Type

// builtinAliases maps every accepted spelling of a builtin to its name.
var builtinAliases = map[string]string{
	"string":       wire.NameString,
	"str":          wire.NameString,
	"integer":      wire.NameInteger,
	"int":          wire.NameInteger,
	"float":        wire.NameFloat,
	"float number": wire.NameFloat,
	"number":       wire.NameFloat,
	"boolean":      wire.NameBoolean,
	"bool":         wire.NameBoolean,
	"file":         wire.NameFile,
	"inputfile":    wire.NameFile,
	"input file":   wire.NameFile,
}

// IsBuiltinAlias reports whether name is a spelling of a builtin type and so
// cannot name an object.
func IsBuiltinAlias(name string) bool {
	_, ok := builtinAliases[strings.ToLower(name)]
	return ok
}

var listPrefixes = []string{"list of ", "array of "}

// ParseType parses one candidate such as "list of list of integer".
func ParseType(s string) (wire.Type, error) {
	rest := strings.TrimSpace(s)
	depth := 0

	for {
		lower := strings.ToLower(rest)
		matched := false

		for _, p := range listPrefixes {
			if strings.HasPrefix(lower, p) {
				rest = strings.TrimSpace(rest[len(p):])
				depth++
				matched = true

				break
			}
		}

		if !matched {
			break
		}
	}

	if rest == "" {
		return wire.Type{}, fmt.Errorf("empty type in %q", s)
	}

	if name, ok := builtinAliases[strings.ToLower(rest)]; ok {
		return wire.Type{Name: name, Builtin: true, Depth: depth}, nil
	}

	if !isIdent(rest) {
		return wire.Type{}, fmt.Errorf("invalid type name %q", rest)
	}

	return wire.Type{Name: rest, Depth: depth}, nil
}

// ParseTypes parses a union string into its candidates, in order.
func ParseTypes(s string) (TypeList, error) {
	var out TypeList

	for _, part := range splitUnion(s) {
		t, err := ParseType(part)
		if err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}

func splitUnion(s string) []string {
	s = strings.ReplaceAll(s, " or ", "|")
	parts := strings.Split(s, "|")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func isIdent(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}

		return false
	}

	return s != ""
}

// String renders the list as "integer | string".
func (t TypeList) String() string {
	return wire.Union(t)
}

// UnmarshalYAML implements custom YAML unmarshaling for TypeList.
func (t *TypeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string

		err := node.Decode(&s)
		if err != nil {
			return err
		}

		list, err := ParseTypes(s)
		if err != nil {
			return err
		}

		*t = list

		return nil

	case yaml.MappingNode:
		typ, err := parseStructuredType(node)
		if err != nil {
			return err
		}

		*t = TypeList{typ}

		return nil

	case yaml.SequenceNode:
		var list TypeList

		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				var s string

				err := item.Decode(&s)
				if err != nil {
					return err
				}

				typ, err := ParseType(s)
				if err != nil {
					return err
				}

				list = append(list, typ)

			case yaml.MappingNode:
				typ, err := parseStructuredType(item)
				if err != nil {
					return err
				}

				list = append(list, typ)

			default:
				return fmt.Errorf("line %d: expected string or map in type list, got %v", item.Line, item.Kind)
			}
		}

		*t = list

		return nil

	default:
		return fmt.Errorf("line %d: expected string, map, or array for type, got %v", node.Line, node.Kind)
	}
}

// parseStructuredType parses {name: PhotoSize, depth: 2}.
func parseStructuredType(node *yaml.Node) (wire.Type, error) {
	var raw struct {
		Name  string `yaml:"name"`
		Depth int    `yaml:"depth"`
	}

	err := node.Decode(&raw)
	if err != nil {
		return wire.Type{}, err
	}

	if raw.Depth < 0 {
		return wire.Type{}, errors.New("type depth must not be negative")
	}

	typ, err := ParseType(raw.Name)
	if err != nil {
		return wire.Type{}, err
	}

	typ.Depth += raw.Depth

	return typ, nil
}

// MarshalYAML implements custom YAML marshaling for TypeList.
func (t TypeList) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML lets a field be written as a bare type string, which is the
// usual way to declare a callable's return value:
//
//	returns: Message | boolean
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&f.Types)
	}

	type plain Field

	return node.Decode((*plain)(f))
}
