// Package wire is the runtime contract shared by all generated bindings.
//
// It converts between native Go values and the wire representation used by
// the transport: string-keyed maps, ordered sequences and scalars (string,
// number, boolean, nil).
//
// # Types and candidates
//
// A Type names one candidate of a field's type union together with its list
// nesting depth. A Codec couples a Type with the functions that encode and
// decode it; builtin codecs exist for strings, integers, floats, booleans and
// file uploads, Object builds one for a generated value object and List wraps
// any codec in one more level of nesting:
//
//	wire.List(wire.List(wire.Integer)) // list of list of integer, [][]int64
//
// # Fallback
//
// Deserialize tries the candidates of a Field in declaration order and keeps
// the first one that decodes. Failed attempts are reported to a Sink and, if
// every candidate fails, returned together as a *ParseExhausted. Declaration
// order decides between candidates that would both accept a value.
package wire
