package schema

import (
	"binding-generator/pkg/wire"
)

// Document represents the root of a schema file: the value objects and the
// callables of one external API.
type Document struct {
	// Version of the schema format.
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name of the generated bindings.
	Package string `yaml:"package,omitempty"`

	// Objects are the value-object descriptors in authoring order.
	Objects []Object `yaml:"objects,omitempty"`

	// Callables are the API methods in authoring order.
	Callables []Callable `yaml:"functions,omitempty"`
}

// Object describes one value-object type.
type Object struct {
	// Name is the type name as the API documents it, e.g. "Message".
	Name string `yaml:"name"`

	// Parent names the object whose fields come first in this one.
	Parent string `yaml:"parent,omitempty"`

	// Fields in declaration order.
	Fields []Field `yaml:"fields,omitempty"`

	Description string `yaml:"description,omitempty"`
	Link        string `yaml:"link,omitempty"`
}

// Callable describes one API method.
type Callable struct {
	// Name is the authored method name, e.g. "send_message".
	Name string `yaml:"name"`

	// WireName is what the transport is called with. Defaults to the
	// lowerCamel form of Name.
	WireName string `yaml:"wire_name,omitempty"`

	// Params in authoring order. Normalize splits them into Required and
	// Optional.
	Params []Field `yaml:"params,omitempty"`

	// Required and Optional keep the authoring order of Params.
	Required []Field `yaml:"-"`
	Optional []Field `yaml:"-"`

	// Returns describes the response. Its name defaults to "result".
	Returns Field `yaml:"returns"`

	Description string `yaml:"description,omitempty"`
	Link        string `yaml:"link,omitempty"`
}

// Field is one named, wire-keyed value slot.
type Field struct {
	// Name is the authored field name, e.g. "chat_id".
	Name string `yaml:"name"`

	// Key is the wire map key. Defaults to Name.
	Key string `yaml:"key,omitempty"`

	// Types are the candidate types in authoring order. Order decides which
	// candidate wins when several could read a value.
	Types TypeList `yaml:"type"`

	Optional bool `yaml:"optional,omitempty"`

	// Const, when set, is the only value the field accepts.
	Const any `yaml:"const,omitempty"`

	// Default is sent for an optional field that holds no value.
	Default any `yaml:"default,omitempty"`

	Description string `yaml:"description,omitempty"`
}

// IsUnion reports whether the field has more than one candidate type.
func (f *Field) IsUnion() bool {
	return len(f.Types) > 1
}

// Objects returns the non-builtin type names the field refers to.
func (f *Field) Objects() []string {
	var names []string

	for _, t := range f.Types {
		if !t.Builtin {
			names = append(names, t.Name)
		}
	}

	return names
}

// ParamsInOrder returns required params followed by optional ones.
func (c *Callable) ParamsInOrder() []Field {
	out := make([]Field, 0, len(c.Required)+len(c.Optional))
	out = append(out, c.Required...)

	return append(out, c.Optional...)
}

// Types returns the candidate types as wire types.
func (t TypeList) Types() []wire.Type {
	return []wire.Type(t)
}
