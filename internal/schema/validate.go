package schema

import (
	"fmt"
	"slices"

	"binding-generator/internal/common"
	"binding-generator/internal/diagnostic"
	"binding-generator/internal/match"
	"binding-generator/pkg/wire"
)

// maxSuggestions bounds "did you mean" lists.
const maxSuggestions = 3

// Validate checks that doc is well formed enough to compile: unique names,
// known type and parent references, acyclic parents, non-empty candidate
// lists and constants and defaults that fit their candidates.
func Validate(doc *Document) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if doc == nil {
		res.AddError("schema_is_nil", "schema document is nil", "", "")
		return res
	}

	idx := NewIndex(doc)

	for _, name := range idx.DuplicateObjects {
		res.AddError("duplicate_object", fmt.Sprintf("duplicate object %q", name), name, "")
	}

	for _, name := range idx.DuplicateCallables {
		res.AddError("duplicate_callable", fmt.Sprintf("duplicate callable %q", name), name, "")
	}

	for _, o := range idx.Objects() {
		validateObject(res, idx, o)
	}

	wireNames := map[string]string{}

	for _, c := range idx.Callables() {
		validateCallable(res, idx, c)

		if other, ok := wireNames[c.WireName]; ok {
			res.AddError("duplicate_wire_name",
				fmt.Sprintf("wire name %q is also used by %q", c.WireName, other), c.Name, "")
		} else {
			wireNames[c.WireName] = c.Name
		}
	}

	return res
}

func validateObject(res *diagnostic.Diagnostics, idx *Index, o *Object) {
	if o.Name == "" {
		res.AddError("missing_name", "object must have a name", "", "")
		return
	}

	if !isIdent(o.Name) {
		res.AddError("invalid_name", fmt.Sprintf("object name %q is not an identifier", o.Name), o.Name, "")
	}

	if IsBuiltinAlias(o.Name) {
		res.AddError("reserved_name", fmt.Sprintf("object name %q is a builtin type", o.Name), o.Name, "")
	}

	if o.Parent != "" {
		if _, ok := idx.Object(o.Parent); !ok {
			res.AddError("unknown_parent", fmt.Sprintf("parent %q not found", o.Parent), o.Name, "",
				match.Suggest(o.Parent, idx.ObjectNames(), maxSuggestions)...)
		} else if _, cycle := idx.Ancestors(o); cycle {
			res.AddError("parent_cycle", fmt.Sprintf("parent chain of %q loops", o.Name), o.Name, "")
		}
	}

	validateFields(res, idx, o.Name, o.Fields)

	inherited := inheritedFields(idx, o)
	for _, f := range o.Fields {
		if p, ok := inherited[f.Name]; ok && p.Key != f.Key {
			res.AddWarning("override_changes_key",
				fmt.Sprintf("field overrides inherited key %q with %q", p.Key, f.Key), o.Name, f.Name)
		}
	}
}

func inheritedFields(idx *Index, o *Object) map[string]Field {
	chain, _ := idx.Ancestors(o)

	out := map[string]Field{}
	for _, a := range chain {
		for _, f := range a.Fields {
			if _, ok := out[f.Name]; !ok {
				out[f.Name] = f
			}
		}
	}

	return out
}

func validateCallable(res *diagnostic.Diagnostics, idx *Index, c *Callable) {
	if c.Name == "" {
		res.AddError("missing_name", "callable must have a name", "", "")
		return
	}

	validateFields(res, idx, c.Name, c.Params)
	validateField(res, idx, c.Name, &c.Returns)

	if len(c.Returns.Types) > 0 && !slices.ContainsFunc(c.Returns.Types, isReadable) {
		res.AddError("unreadable_result",
			fmt.Sprintf("result %s can never be read from a response", c.Returns.Types), c.Name, c.Returns.Name)
	}
}

// isReadable reports whether a response value can decode as t.
func isReadable(t wire.Type) bool {
	return !t.Builtin || t.Name != wire.NameFile
}

func validateFields(res *diagnostic.Diagnostics, idx *Index, owner string, fields []Field) {
	names := make([]string, 0, len(fields))
	keys := make([]string, 0, len(fields))

	for i := range fields {
		f := &fields[i]
		names = append(names, f.Name)
		keys = append(keys, f.Key)

		validateField(res, idx, owner, f)
	}

	for _, dup := range common.Duplicates(names) {
		res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", dup), owner, dup)
	}

	for _, dup := range common.Duplicates(keys) {
		res.AddError("duplicate_key", fmt.Sprintf("duplicate wire key %q", dup), owner, dup)
	}
}

func validateField(res *diagnostic.Diagnostics, idx *Index, owner string, f *Field) {
	if f.Name == "" {
		res.AddError("missing_field_name", "field must have a name", owner, "")
		return
	}

	if len(f.Types) == 0 {
		res.AddError("empty_candidates", "field must declare at least one type", owner, f.Name)
		return
	}

	for _, dup := range common.Duplicates(f.Types) {
		res.AddWarning("duplicate_candidate",
			fmt.Sprintf("candidate %s is listed twice; the second can never win", dup), owner, f.Name)
	}

	for _, t := range f.Types {
		if t.Builtin {
			continue
		}

		if _, ok := idx.Object(t.Name); !ok {
			res.AddError("unknown_type", fmt.Sprintf("unknown type %q", t.Name), owner, f.Name,
				match.Suggest(t.Name, idx.ObjectNames(), maxSuggestions)...)
		}
	}

	if f.Const != nil && !fitsBuiltin(f.Types, f.Const) {
		res.AddError("constant_mismatch",
			fmt.Sprintf("constant %v does not fit %s", f.Const, f.Types), owner, f.Name)
	}

	if f.Default != nil {
		validateDefault(res, owner, f)
	}
}

func validateDefault(res *diagnostic.Diagnostics, owner string, f *Field) {
	switch {
	case !f.Optional:
		res.AddError("default_on_required", "only optional fields can have a default", owner, f.Name)
	case !fitsBuiltin(f.Types, f.Default):
		res.AddError("default_mismatch",
			fmt.Sprintf("default %v does not fit %s", f.Default, f.Types), owner, f.Name)
	case f.Const != nil && !wire.Equal(f.Default, f.Const):
		res.AddError("default_mismatch",
			fmt.Sprintf("default %v differs from constant %v", f.Default, f.Const), owner, f.Name)
	}
}

// fitsBuiltin reports whether a scalar loaded from the schema is a member of
// one of the builtin candidates.
func fitsBuiltin(types TypeList, v any) bool {
	for _, t := range types {
		c, ok := BuiltinCandidate(t)
		if ok && c.Accepts(v) {
			return true
		}
	}

	return false
}

// BuiltinCandidate returns the runtime codec of a depth-0 builtin type.
func BuiltinCandidate(t wire.Type) (wire.Candidate, bool) {
	if !t.Builtin || t.Depth != 0 {
		return nil, false
	}

	switch t.Name {
	case wire.NameString:
		return wire.String, true
	case wire.NameInteger:
		return wire.Integer, true
	case wire.NameFloat:
		return wire.Float, true
	case wire.NameBoolean:
		return wire.Boolean, true
	case wire.NameFile:
		return wire.File, true
	default:
		return nil, false
	}
}
