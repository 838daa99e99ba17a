package plan

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"binding-generator/internal/common"
	"binding-generator/internal/schema"
	"binding-generator/pkg/wire"
)

// ErrInvalidSchema is returned by Build when validation reports errors.
var ErrInvalidSchema = errors.New("invalid schema")

// Method names every generated object defines.
var objectMethods = []string{"Validate", "ToWire", "String", "Has", "FieldNames"}

// Method names every generated union wrapper defines.
var unionMethods = []string{"Value", "Validate", "ToWire"}

// Identifiers the generated files import. Exported names cannot clash with
// them, unexported ones could.
var importNames = []string{"context", "errors", "fmt", "wire", "init"}

// Build validates doc and resolves it into a BindingPlan. Warnings are kept
// in the plan; errors abort with ErrInvalidSchema and the plan still carries
// the diagnostics.
func Build(doc *schema.Document) (*BindingPlan, error) {
	diags := schema.Validate(doc)
	if diags.HasErrors() {
		return &BindingPlan{Diagnostics: *diags}, fmt.Errorf("%w: %w", ErrInvalidSchema, diags.Error())
	}

	b := &builder{
		idx:     schema.NewIndex(doc),
		ns:      common.NewNamespace(importNames...),
		objects: make(map[string]*ObjectPlan),
		codecs:  make(map[wire.Type]*CodecPlan),
		p: &BindingPlan{
			Package:     doc.Package,
			Diagnostics: *diags,
		},
	}

	if err := b.buildObjects(); err != nil {
		return nil, err
	}

	for _, c := range b.idx.Callables() {
		b.p.Callables = append(b.p.Callables, b.callable(c))
	}

	return b.p, nil
}

type builder struct {
	idx     *schema.Index
	ns      *common.Namespace
	objects map[string]*ObjectPlan
	codecs  map[wire.Type]*CodecPlan
	p       *BindingPlan
}

func (b *builder) buildObjects() error {
	objects := b.idx.Objects()

	// Type names are handed out first so they win over derived identifiers.
	plans := make([]*ObjectPlan, len(objects))
	for i, o := range objects {
		plans[i] = &ObjectPlan{
			Schema: o,
			Name:   o.Name,
			GoName: b.ns.Name(common.GoName(o.Name)),
			Doc:    docLines(o.Description, o.Link),
		}
		b.objects[o.Name] = plans[i]
	}

	for _, op := range plans {
		op.Constructor = b.ns.Name("New" + op.GoName)
		op.FromWire = b.ns.Name(op.GoName + "FromWire")
		op.NamesVar = b.ns.Name(common.UnexportedName(op.GoName) + "FieldNames")
	}

	position := make(map[string]int, len(objects))
	for i, o := range objects {
		position[o.Name] = i
	}

	order, err := topoSort(len(objects), func(i int) []int {
		if p, ok := position[objects[i].Parent]; ok && objects[i].Parent != "" {
			return []int{p}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("ordering objects: %w", err)
	}

	for _, i := range order {
		op := plans[i]
		if parent := op.Schema.Parent; parent != "" {
			op.Parent = b.objects[parent]
		}

		b.flatten(op)
		b.p.Objects = append(b.p.Objects, op)
	}

	// Every object gets a codec, referenced or not.
	for _, op := range b.p.Objects {
		b.codec(wire.Type{Name: op.Name})
	}

	return nil
}

// flatten resolves the object's fields: inherited ones first, own fields
// appended, and an own field repeating an inherited name replacing it in
// place.
func (b *builder) flatten(op *ObjectPlan) {
	members := common.NewNamespace(objectMethods...)

	var fields []*FieldPlan
	if op.Parent != nil {
		fields = slices.Clone(op.Parent.Fields)
		for _, f := range fields {
			members.Reserve(f.GoName)
		}
	}

	for i := range op.Schema.Fields {
		sf := &op.Schema.Fields[i]

		pos := slices.IndexFunc(fields, func(f *FieldPlan) bool { return f.Name == sf.Name })

		goName := ""
		if pos >= 0 {
			goName = fields[pos].GoName
		} else {
			goName = members.Name(common.GoName(sf.Name))
		}

		fp := b.field(sf, op.Name, goName, "field"+op.GoName+goName, op.GoName+goName)

		if pos >= 0 {
			fields[pos] = fp
		} else {
			fields = append(fields, fp)
		}
	}

	op.Fields = fields
}

func (b *builder) callable(c *schema.Callable) *CallablePlan {
	goName := b.ns.Name(common.GoName(c.Name))

	cp := &CallablePlan{
		Schema:   c,
		Name:     c.Name,
		WireName: c.WireName,
		GoName:   goName,
		RawName:  b.ns.Name(goName + "Raw"),
		Doc:      docLines(c.Description, c.Link),
	}

	params := c.ParamsInOrder()
	if len(params) > 0 {
		cp.ArgsType = b.ns.Name(goName + "Args")
	}

	members := common.NewNamespace("Validate", "ToWire")

	for i := range params {
		sf := &params[i]
		member := members.Name(common.GoName(sf.Name))
		cp.Params = append(cp.Params, b.field(sf, c.Name, member, "param"+goName+member, goName+member))
	}

	cp.Return = b.field(&c.Returns, c.Name, "", "return"+goName, goName+"Result")

	return cp
}

// field resolves one descriptor field. unionName is used only when the field
// has more than one candidate.
func (b *builder) field(sf *schema.Field, owner, goName, varName, unionName string) *FieldPlan {
	fp := &FieldPlan{
		Schema:   sf,
		Owner:    owner,
		Name:     sf.Name,
		Key:      sf.Key,
		GoName:   goName,
		Var:      b.ns.Name(common.UnexportedName(varName)),
		Optional: sf.Optional,
		Const:    sf.Const,
		Default:  sf.Default,
		Doc:      docLines(sf.Description, ""),
	}

	for _, t := range sf.Types {
		fp.Candidates = append(fp.Candidates, b.candidate(t))
	}

	switch first := fp.Candidates[0]; {
	case len(fp.Candidates) > 1:
		fp.Kind = KindUnion
		fp.Union = b.union(fp, unionName)
		fp.GoType = "*" + fp.Union.Name
	case first.Nilable:
		fp.Kind = KindNilable
		fp.GoType = first.GoType
	case sf.Optional:
		fp.Kind = KindPointer
		fp.GoType = "*" + first.GoType
	default:
		fp.Kind = KindValue
		fp.GoType = first.GoType
	}

	return fp
}

func (b *builder) union(fp *FieldPlan, name string) *UnionPlan {
	name = b.ns.Name(name)

	u := &UnionPlan{
		Name:        name,
		Constructor: b.ns.Name("new" + name),
		Field:       fp,
	}

	members := common.NewNamespace(unionMethods...)

	for _, c := range fp.Candidates {
		c.Member = members.Name(b.memberName(c.Type))

		c.MemberType = c.GoType
		if !c.Nilable {
			c.MemberType = "*" + c.GoType
		}

		u.Members = append(u.Members, c)
	}

	b.p.Unions = append(b.p.Unions, u)

	return u
}

func (b *builder) candidate(t wire.Type) *CandidatePlan {
	c := &CandidatePlan{
		Type:    t,
		GoType:  b.goType(t),
		Nilable: !t.Builtin || t.IsList() || t.Name == wire.NameFile,
	}

	if t.Builtin && !t.IsList() {
		c.Codec = "wire." + common.GoName(t.Name)
	} else {
		c.Codec = b.codec(t).Var
	}

	return c
}

// codec returns the codec plan of an object or list type, creating the
// element codecs first.
func (b *builder) codec(t wire.Type) *CodecPlan {
	if cp, ok := b.codecs[t]; ok {
		return cp
	}

	cp := &CodecPlan{Type: t, GoType: b.goType(t)}

	switch {
	case t.IsList():
		elem := t.Elem()

		elemExpr := ""
		if elem.Builtin && !elem.IsList() {
			elemExpr = "wire." + common.GoName(elem.Name)
		} else {
			elemExpr = b.codec(elem).Var
		}

		cp.Expr = "wire.List(" + elemExpr + ")"
	default:
		op := b.objects[t.Name]
		cp.Expr = fmt.Sprintf("wire.Object[*%s](%s, %s)", op.GoName, strconv.Quote(op.Name), op.FromWire)
	}

	cp.Var = b.ns.Name("codec" + b.memberName(t))
	if op, ok := b.objects[t.Name]; ok && !t.IsList() {
		op.Codec = cp.Var
	}

	b.codecs[t] = cp
	b.p.Codecs = append(b.p.Codecs, cp)

	return cp
}

func (b *builder) goType(t wire.Type) string {
	base := ""

	switch {
	case !t.Builtin:
		base = "*" + b.objects[t.Name].GoName
	case t.Name == wire.NameInteger:
		base = "int64"
	case t.Name == wire.NameFloat:
		base = "float64"
	case t.Name == wire.NameBoolean:
		base = "bool"
	case t.Name == wire.NameFile:
		base = "*wire.InputFile"
	default:
		base = "string"
	}

	return strings.Repeat("[]", t.Depth) + base
}

// memberName spells a type as an identifier: "ListOfListOfPhotoSize".
func (b *builder) memberName(t wire.Type) string {
	base := common.GoName(t.Name)
	if op, ok := b.objects[t.Name]; ok && !t.Builtin {
		base = op.GoName
	}

	return strings.Repeat("ListOf", t.Depth) + base
}

func docLines(description, link string) []string {
	var lines []string

	for line := range strings.SplitSeq(description, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if link != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, "See "+link)
	}

	return lines
}

// literal renders a constant loaded from the schema as a Go literal.
func literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return strconv.Quote(fmt.Sprint(x))
	}
}

func zeroLiteral(t wire.Type) string {
	if t.IsList() || !t.Builtin || t.Name == wire.NameFile {
		return "nil"
	}

	switch t.Name {
	case wire.NameString:
		return `""`
	case wire.NameBoolean:
		return "false"
	default:
		return "0"
	}
}
