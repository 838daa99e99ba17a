// Package plan resolves validated schema descriptors into a BindingPlan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Validate the document, keep warnings, abort on errors
//  2. Hand out Go identifiers: type names first, then constructors,
//     codecs, field descriptors and union wrappers
//  3. Order objects so parents precede children, then flatten every
//     object's fields (inherited first, overrides in place)
//  4. Resolve each candidate type to its Go type and codec expression,
//     creating list codecs inner level first
package plan
