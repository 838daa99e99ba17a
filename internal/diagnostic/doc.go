// Package diagnostic provides structured errors, warnings and notes produced
// while validating a schema, with optional "did you mean" suggestions.
package diagnostic
