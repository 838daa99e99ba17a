package wire

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var describeConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Describe renders an arbitrary wire or native value for diagnostics.
func Describe(v any) string {
	return strings.TrimSpace(describeConfig.Sprintf("%#v", v))
}

// Names is the declaration-order set of an object's field names.
type Names []string

// Has reports whether name is one of the field names.
func (n Names) Has(name string) bool {
	return slices.Contains(n, name)
}

// List returns a copy of the names.
func (n Names) List() []string {
	return slices.Clone(n)
}

// Repr renders an object as `Name(field=value, ...)` in declaration order.
// values must line up with names.
func Repr(name string, names Names, values ...any) string {
	var b strings.Builder

	b.WriteString(name)
	b.WriteByte('(')

	for i, field := range names {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(field)
		b.WriteByte('=')

		if i < len(values) {
			b.WriteString(reprValue(values[i]))
		}
	}

	b.WriteByte(')')

	return b.String()
}

func reprValue(v any) string {
	if isAbsent(v) {
		return "nil"
	}

	switch x := v.(type) {
	case fmt.Stringer:
		return x.String()
	case string:
		return fmt.Sprintf("%q", x)
	case bool, int, int64, float64:
		return fmt.Sprint(x)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return reprValue(rv.Elem().Interface())
	}

	if items, ok := asSlice(v); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = reprValue(item)
		}

		return "[" + strings.Join(parts, ", ") + "]"
	}

	return describeConfig.Sprintf("%v", v)
}

// ObjectMap checks that raw is a wire map for the named object. A nil or
// empty map yields a nil map and no error: the "no object" signal.
func ObjectMap(raw any, name string) (map[string]any, error) {
	if raw == nil {
		return nil, nil
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &CoercionError{Type: Type{Name: name}, Actual: Shape(raw)}
	}

	if len(m) == 0 {
		return nil, nil
	}

	return m, nil
}
