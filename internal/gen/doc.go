// Package gen emits Go bindings from a BindingPlan.
//
// Generation approach uses text/template + golang.org/x/tools/imports for
// readable, deterministic Go code. One plan becomes up to four files:
//   - wire_fields.go: package-level codecs and field descriptors, assigned
//     in init so recursive objects need no initialization cycle
//   - objects.go: value objects with New, Validate, ToWire, FromWire,
//     String, Has and FieldNames
//   - unions.go: one wrapper type per union-typed field or return
//   - callables.go: args structs and the typed and raw callable wrappers
package gen
