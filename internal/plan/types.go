package plan

import (
	"binding-generator/internal/common"
	"binding-generator/internal/diagnostic"
	"binding-generator/internal/schema"
	"binding-generator/pkg/wire"
)

// BindingPlan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type BindingPlan struct {
	// Package is the Go package name of the bindings.
	Package string
	// Objects in dependency order: every parent precedes its children.
	Objects []*ObjectPlan
	// Callables in authoring order.
	Callables []*CallablePlan
	// Codecs are the non-scalar candidate codecs, each element codec before
	// the list codecs wrapping it.
	Codecs []*CodecPlan
	// Unions lists every union wrapper type, owned by objects, args and
	// returns alike.
	Unions []*UnionPlan
	// Diagnostics contains the warnings found while validating the schema.
	Diagnostics diagnostic.Diagnostics
}

// ObjectPlan is one value-object type with its fields flattened.
type ObjectPlan struct {
	// Schema is the descriptor the plan was built from.
	Schema *schema.Object
	// Name is the authored type name, used in wire diagnostics.
	Name string
	// GoName is the exported struct name.
	GoName string
	// Parent is nil for root objects.
	Parent *ObjectPlan
	// Fields are the parent's flattened fields followed by the object's own.
	// A field repeating an inherited name replaces it in place.
	Fields []*FieldPlan
	// Constructor, FromWire, NamesVar and Codec are the generated identifiers.
	Constructor string
	FromWire    string
	NamesVar    string
	Codec       string
	Doc         []string
}

// Own reports whether f is declared by the object itself rather than inherited.
func (o *ObjectPlan) Own(f *FieldPlan) bool {
	return f.Owner == o.Name
}

// ConstFields returns the fields whose constant NewX fills in when unset.
func (o *ObjectPlan) ConstFields() []*FieldPlan {
	var out []*FieldPlan

	for _, f := range o.Fields {
		if f.FillsConst() {
			out = append(out, f)
		}
	}

	return out
}

// CallablePlan is one API method.
type CallablePlan struct {
	Schema *schema.Callable
	// Name is the authored name and WireName what the transport is called with.
	Name     string
	WireName string
	// GoName is the exported function name; RawName returns the raw response.
	GoName  string
	RawName string
	// ArgsType is empty when the callable takes no parameters.
	ArgsType string
	// Params are required fields followed by optional ones.
	Params []*FieldPlan
	Return *FieldPlan
	Doc    []string
}

// HasArgs reports whether an args struct is generated.
func (c *CallablePlan) HasArgs() bool {
	return c.ArgsType != ""
}

// FieldPlan is one resolved field, parameter or return value.
type FieldPlan struct {
	Schema *schema.Field
	// Owner is the authored name of the declaring object or callable.
	Owner string
	Name  string
	Key   string
	// GoName is the struct member name. Empty for return values.
	GoName string
	// Var is the package-level *wire.Field holding the descriptor.
	Var        string
	Optional   bool
	Const      any
	Default    any
	Kind       FieldKind
	GoType     string
	Candidates []*CandidatePlan
	// Union is set for fields with more than one candidate.
	Union *UnionPlan
	Doc   []string
}

// HasConst reports whether the field carries a constant.
func (f *FieldPlan) HasConst() bool {
	return f.Const != nil
}

// HasDefault reports whether an absent value is sent as a default.
func (f *FieldPlan) HasDefault() bool {
	return f.Default != nil
}

// DefaultExpr is the Go literal of the field's default.
func (f *FieldPlan) DefaultExpr() string {
	return literal(f.Default)
}

// FillsConst reports whether the constructor fills the constant when unset.
// Only required plain values qualify: for them the zero value means unset.
// False is a real boolean value, so boolean constants are never filled.
func (f *FieldPlan) FillsConst() bool {
	if f.Const == nil || f.Kind != KindValue {
		return false
	}

	return f.Candidates[0].Type.Name != wire.NameBoolean
}

// ConstExpr is the Go literal of the field's constant.
func (f *FieldPlan) ConstExpr() string {
	return literal(f.Const)
}

// ZeroExpr is the zero value of the field's Go type.
func (f *FieldPlan) ZeroExpr() string {
	if f.Kind != KindValue {
		return "nil"
	}

	return zeroLiteral(f.Candidates[0].Type)
}

// ValueExpr is the expression passed to Check and Put for the field held
// by recv.
func (f *FieldPlan) ValueExpr(recv string) string {
	sel := recv + "." + f.GoName

	switch f.Kind {
	case KindPointer:
		return "wire.Deref(" + sel + ")"
	case KindUnion:
		return sel + ".Value()"
	default:
		return sel
	}
}

// TakeStmt is the statement storing the resolved r into dst.
func (f *FieldPlan) TakeStmt(r, dst string) string {
	switch f.Kind {
	case KindPointer:
		return "wire.TakePtr(" + r + ", 0, &" + dst + ")"
	case KindUnion:
		return dst + " = " + f.Union.Constructor + "(" + r + ")"
	default:
		return "wire.Take(" + r + ", 0, &" + dst + ")"
	}
}

// FieldKind describes how a field is held in Go.
type FieldKind int

const (
	// KindValue - required scalar held by value.
	KindValue FieldKind = iota
	// KindPointer - optional scalar held by pointer, nil when absent.
	KindPointer
	// KindNilable - object pointer or slice, nil when absent.
	KindNilable
	// KindUnion - pointer to a union wrapper, nil when absent.
	KindUnion
)

// String returns a human-readable kind name.
func (k FieldKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindPointer:
		return "pointer"
	case KindNilable:
		return "nilable"
	case KindUnion:
		return "union"
	default:
		return common.UnknownStr
	}
}

// CandidatePlan is one candidate type of a field.
type CandidatePlan struct {
	Type wire.Type
	// GoType is the native type, e.g. "[]*PhotoSize".
	GoType string
	// Codec is the expression of the wire.Candidate, e.g. "wire.Integer".
	Codec string
	// Nilable is true for objects, lists and files.
	Nilable bool
	// Member is the union wrapper member name and MemberType its Go type.
	// Non-nilable members are held by pointer.
	Member     string
	MemberType string
}

// UnionPlan is the wrapper type holding exactly one candidate of a union field.
type UnionPlan struct {
	Name        string
	Constructor string
	Field       *FieldPlan
	Members     []*CandidatePlan
}

// CodecPlan is a package-level codec for an object or list candidate.
type CodecPlan struct {
	Type   wire.Type
	Var    string
	GoType string
	// Expr builds the codec; it may refer to codecs listed earlier.
	Expr string
}
