package wire

import (
	"fmt"
)

// Field is a named, wire-keyed value slot with an ordered, non-empty union of
// candidate types. Candidate order is the deserialization precedence.
//
// Generated bindings keep their fields as package-level values; a Field must
// not be modified after it is built.
type Field struct {
	Name       string
	Key        string
	Candidates []Candidate
	Optional   bool
	// Const, when non-nil, is the only value the field accepts.
	Const any
	// Default, when non-nil, is sent in place of an absent value.
	Default any
}

// Types returns the candidate types in declared order.
func (f *Field) Types() []Type {
	types := make([]Type, len(f.Candidates))
	for i, c := range f.Candidates {
		types[i] = c.Type()
	}

	return types
}

// Check validates a native value against the field: presence, the constant
// constraint and membership in the type union. Pointers to optional scalars
// must be dereferenced first, see Deref.
func (f *Field) Check(v any) error {
	if isAbsent(v) {
		if f.Optional {
			return nil
		}

		return f.invalid(v, "required value missing")
	}

	if f.Const != nil && !Equal(v, f.Const) {
		return f.invalid(v, fmt.Sprintf("must equal %s", reprValue(f.Const)))
	}

	for _, c := range f.Candidates {
		if c.Accepts(v) {
			return nil
		}
	}

	return f.invalid(v, "value not in type union")
}

// Encode serializes v with the first candidate that accepts it.
func (f *Field) Encode(v any) (any, error) {
	var first error

	for _, c := range f.Candidates {
		w, err := Serialize(v, c)
		if err == nil {
			return w, nil
		}

		if first == nil {
			first = err
		}
	}

	if len(f.Candidates) == 1 {
		return nil, first
	}

	return nil, f.invalid(v, "no candidate type can encode value")
}

// Exclusive reports a union wrapper of f that holds set members instead of
// exactly one.
func (f *Field) Exclusive(set int) error {
	if set == 1 {
		return nil
	}

	return &ValidationError{
		Field:    f.Name,
		Expected: f.Types(),
		Actual:   fmt.Sprintf("%d members set", set),
		Reason:   "exactly one member must be set",
	}
}

func (f *Field) invalid(v any, reason string) *ValidationError {
	return &ValidationError{
		Field:    f.Name,
		Expected: f.Types(),
		Actual:   Shape(v),
		Reason:   reason,
	}
}

// Put encodes v into m under the field's wire key. An absent value is
// replaced by the field's default; without one it is skipped, so optional
// fields holding no value produce no key.
func Put(m map[string]any, f *Field, v any) error {
	if isAbsent(v) {
		if f.Default == nil {
			return nil
		}

		v = f.Default
	}

	w, err := f.Encode(v)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Key, err)
	}

	m[f.Key] = w

	return nil
}

// Deref returns *p, or an untyped nil when p is nil.
func Deref[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}

// Take stores the resolved value in dst when the candidate at index idx won.
func Take[T any](r Resolved, idx int, dst *T) bool {
	if r.Index != idx {
		return false
	}

	v, ok := r.Value.(T)
	if ok {
		*dst = v
	}

	return ok
}

// TakePtr is Take for destinations holding a pointer to the value.
func TakePtr[T any](r Resolved, idx int, dst **T) bool {
	var v T
	if !Take(r, idx, &v) {
		return false
	}

	*dst = &v

	return true
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
