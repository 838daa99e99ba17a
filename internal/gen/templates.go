package gen

import (
	"strconv"
	"strings"
	"text/template"

	"binding-generator/internal/plan"
	"binding-generator/pkg/wire"
)

const header = `// Code generated by binding-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}

	wire "{{.WireImport}}"
)
`

var funcs = template.FuncMap{
	"quote":   strconv.Quote,
	"comment": comment,
	"recv":    receiver,
	"types": func(f *plan.FieldPlan) string {
		return wire.Union(f.Schema.Types.Types())
	},
	"candidates": func(f *plan.FieldPlan) string {
		exprs := make([]string, len(f.Candidates))
		for i, c := range f.Candidates {
			exprs[i] = c.Codec
		}

		return strings.Join(exprs, ", ")
	},
	"members": func(u *plan.UnionPlan) string {
		names := make([]string, len(u.Members))
		for i, m := range u.Members {
			names[i] = m.Member
		}

		return strings.Join(names, ", ")
	},
}

// comment renders doc lines as a // comment block.
func comment(lines []string) string {
	var b strings.Builder

	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		if line == "" {
			b.WriteString("//")
			continue
		}

		b.WriteString("// ")
		b.WriteString(line)
	}

	return b.String()
}

// receiver is the lowered first letter of a type name.
func receiver(typeName string) string {
	if typeName == "" {
		return "x"
	}

	return strings.ToLower(typeName[:1])
}

var wireFieldsTemplate = template.Must(template.New("wire_fields").Funcs(funcs).Parse(header + `
var (
{{- range .Plan.Codecs}}
	{{.Var}} wire.Codec[{{.GoType}}]
{{- end}}
)

var (
{{- range .Fields}}
	{{.Var}} *wire.Field
{{- end}}
)

func init() {
{{- range .Plan.Codecs}}
	{{.Var}} = {{.Expr}}
{{- end}}
{{range .Fields}}
	{{.Var}} = &wire.Field{
		Name:       {{quote .Name}},
		Key:        {{quote .Key}},
		Candidates: []wire.Candidate{ {{- candidates .}} },
	{{- if .Optional}}
		Optional:   true,
	{{- end}}
	{{- if .HasConst}}
		Const:      {{.ConstExpr}},
	{{- end}}
	{{- if .HasDefault}}
		Default:    {{.DefaultExpr}},
	{{- end}}
	}
{{- end}}
}
`))

var objectsTemplate = template.Must(template.New("objects").Funcs(funcs).Parse(header + `
{{range .Plan.Objects}}
{{$o := .}}{{$r := recv .GoName -}}
// {{.GoName}} is the {{.Name}} object.
{{- if and $.Comments .Doc}}
//
{{comment .Doc}}
{{- end}}
{{- if .Parent}}
//
// It carries every field of {{.Parent.GoName}}.
{{- end}}
type {{.GoName}} struct {
{{- range .Fields}}
	{{- if and $.Comments .Doc}}
	{{comment .Doc}}
	{{- end}}
	{{.GoName}} {{.GoType}}
{{- end}}
}

var {{.NamesVar}} = wire.Names{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{quote $f.Name}}{{end}} }

// {{.Constructor}} validates v and returns a copy of it.
{{- if .ConstFields}} Unset constant fields are filled in first.{{end}}
func {{.Constructor}}(v {{.GoName}}) (*{{.GoName}}, error) {
{{- range .ConstFields}}
	if v.{{.GoName}} == {{.ZeroExpr}} {
		v.{{.GoName}} = {{.ConstExpr}}
	}
{{- end}}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("{{.Name}}: %w", err)
	}

	return &v, nil
}

// Validate checks every field against its descriptor.
func ({{$r}} *{{.GoName}}) Validate() error {
	return errors.Join(
{{- range .Fields}}
		{{.Var}}.Check({{.ValueExpr $r}}),
	{{- if .Union}}
		{{$r}}.{{.GoName}}.Validate(),
	{{- end}}
{{- end}}
	)
}

// ToWire serializes the object into a wire map. Absent optional fields
// produce no key.
func ({{$r}} *{{.GoName}}) ToWire() (map[string]any, error) {
	out := make(map[string]any, {{len .Fields}})
{{- range .Fields}}
	if err := wire.Put(out, {{.Var}}, {{.ValueExpr $r}}); err != nil {
		return nil, err
	}
{{- end}}

	return out, nil
}

func ({{$r}} *{{.GoName}}) String() string {
	if {{$r}} == nil {
		return "nil"
	}

	return wire.Repr({{quote .Name}}, {{.NamesVar}}
	{{- range .Fields}}, {{.ValueExpr $r}}{{end}})
}

// Has reports whether name is a field of {{.GoName}}, whatever its value.
func (*{{.GoName}}) Has(name string) bool {
	return {{.NamesVar}}.Has(name)
}

// FieldNames returns the field names in declaration order.
func (*{{.GoName}}) FieldNames() []string {
	return {{.NamesVar}}.List()
}

// {{.FromWire}} reads a {{.Name}} wire map. A nil or empty map yields a nil
// object and no error.
func {{.FromWire}}(raw any, sink wire.Sink) (*{{.GoName}}, error) {
	m, err := wire.ObjectMap(raw, {{quote .Name}})
	if err != nil || m == nil {
		return nil, err
	}

	var v {{.GoName}}
{{- if .Fields}}

	var r wire.Resolved
{{- end}}
{{- range .Fields}}

	r, err = wire.Deserialize(m[{{.Var}}.Key], {{.Var}}, sink)
	if err != nil {
		return nil, fmt.Errorf("{{$o.Name}}: %w", err)
	}

	{{.TakeStmt "r" (printf "v.%s" .GoName)}}
{{- end}}

	return {{.Constructor}}(v)
}
{{end}}
`))

var unionsTemplate = template.Must(template.New("unions").Funcs(funcs).Parse(header + `
{{range .Plan.Unions}}
// {{.Name}} holds exactly one candidate of {{.Field.Owner}}.{{.Field.Name}}: {{types .Field}}.
type {{.Name}} struct {
{{- range .Members}}
	{{.Member}} {{.MemberType}}
{{- end}}
}

// Value returns the member that is set, or nil.
func (u *{{.Name}}) Value() any {
	switch {
	case u == nil:
		return nil
{{- range .Members}}
	case u.{{.Member}} != nil:
		return {{if not .Nilable}}*{{end}}u.{{.Member}}
{{- end}}
	default:
		return nil
	}
}

// Validate checks that exactly one of {{members .}} is set. A nil wrapper is
// valid.
func (u *{{.Name}}) Validate() error {
	if u == nil {
		return nil
	}

	set := 0
{{- range .Members}}
	if u.{{.Member}} != nil {
		set++
	}
{{- end}}

	return {{.Field.Var}}.Exclusive(set)
}

// ToWire serializes the member that is set.
func (u *{{.Name}}) ToWire() (any, error) {
	return {{.Field.Var}}.Encode(u.Value())
}

func {{.Constructor}}(r wire.Resolved) *{{.Name}} {
	if !r.Present() {
		return nil
	}

	u := &{{.Name}}{}
{{- range $i, $m := .Members}}
	{{if $m.Nilable}}wire.Take{{else}}wire.TakePtr{{end}}(r, {{$i}}, &u.{{$m.Member}})
{{- end}}

	return u
}
{{end}}
`))

var callablesTemplate = template.Must(template.New("callables").Funcs(funcs).Parse(header + `
{{- range .Plan.Callables}}
{{- if .HasArgs}}

// {{.ArgsType}} are the parameters of {{.Name}}.
type {{.ArgsType}} struct {
{{- range .Params}}
	{{- if and $.Comments .Doc}}
	{{comment .Doc}}
	{{- end}}
	{{.GoName}} {{.GoType}}
{{- end}}
}

// Validate checks every argument against its descriptor.
func (a *{{.ArgsType}}) Validate() error {
	return errors.Join(
{{- range .Params}}
		{{.Var}}.Check({{.ValueExpr "a"}}),
	{{- if .Union}}
		a.{{.GoName}}.Validate(),
	{{- end}}
{{- end}}
	)
}

// ToWire packs the arguments into a flat wire map. Absent optional
// arguments produce no key.
func (a *{{.ArgsType}}) ToWire() (map[string]any, error) {
	out := make(map[string]any, {{len .Params}})
{{- range .Params}}
	if err := wire.Put(out, {{.Var}}, {{.ValueExpr "a"}}); err != nil {
		return nil, err
	}
{{- end}}

	return out, nil
}
{{- end}}

// {{.GoName}} calls {{.WireName}} and reads the response as {{types .Return}}.
{{- if and $.Comments .Doc}}
//
{{comment .Doc}}
{{- end}}
func {{.GoName}}(ctx context.Context, c *wire.Client{{if .HasArgs}}, args *{{.ArgsType}}{{end}}) ({{.Return.GoType}}, error) {
	raw, err := {{.RawName}}(ctx, c{{if .HasArgs}}, args{{end}})
	if err != nil {
		return {{.Return.ZeroExpr}}, err
	}

	r, err := c.Result({{quote .WireName}}, raw, {{.Return.Var}})
	if err != nil {
		return {{.Return.ZeroExpr}}, err
	}
{{- if .Return.Union}}

	return {{.Return.Union.Constructor}}(r), nil
{{- else}}

	var out {{.Return.GoType}}
	{{.Return.TakeStmt "r" "out"}}

	return out, nil
{{- end}}
}

// {{.RawName}} calls {{.WireName}} and returns the response as received.
func {{.RawName}}(ctx context.Context, c *wire.Client{{if .HasArgs}}, args *{{.ArgsType}}{{end}}) (any, error) {
{{- if .HasArgs}}
	if args == nil {
		args = &{{.ArgsType}}{}
	}

	if err := args.Validate(); err != nil {
		return nil, fmt.Errorf("{{.Name}}: %w", err)
	}

	m, err := args.ToWire()
	if err != nil {
		return nil, fmt.Errorf("{{.Name}}: %w", err)
	}

	return c.Execute(ctx, {{quote .WireName}}, m)
{{- else}}
	return c.Execute(ctx, {{quote .WireName}}, map[string]any{})
{{- end}}
}
{{- end}}
`))
