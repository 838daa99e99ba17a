package wire

import "strings"

// Builtin type names. A file is an upload and is only ever sent.
const (
	NameString  = "string"
	NameInteger = "integer"
	NameFloat   = "float"
	NameBoolean = "boolean"
	NameFile    = "file"
)

// Type is one candidate type of a field: the innermost type name, whether it is
// a builtin, and how many list levels wrap it.
//
// Depth 0 is a plain scalar or object. Depth n > 0 is an n-times nested
// ordered sequence whose innermost element is Name.
type Type struct {
	Name    string
	Builtin bool
	Depth   int
}

// Builtin returns the depth-0 builtin type with the given name.
func Builtin(name string) Type {
	return Type{Name: name, Builtin: true}
}

// ListOf returns t wrapped in one more list level.
func (t Type) ListOf() Type {
	t.Depth++
	return t
}

// Elem returns the element type of a list type. For depth 0 it returns t.
func (t Type) Elem() Type {
	if t.Depth > 0 {
		t.Depth--
	}

	return t
}

// IsList reports whether t is a sequence type.
func (t Type) IsList() bool {
	return t.Depth > 0
}

// String renders t as "list of list of integer".
func (t Type) String() string {
	return strings.Repeat("list of ", t.Depth) + t.Name
}

// Union renders candidate types as "integer | string".
func Union(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}

	return strings.Join(parts, " | ")
}
