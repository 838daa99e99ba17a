package wire

import (
	"fmt"
	"strings"
)

// ValidationError reports a construction-time or argument-time violation:
// a missing required value, a value outside the field's type union, or a
// value that differs from the field's constant.
type ValidationError struct {
	Field    string
	Expected []Type
	Actual   string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s: expected %s, got %s", e.Field, e.Reason, Union(e.Expected), e.Actual)
}

// SchemaMismatch reports a value whose shape does not match the type it is
// serialized as, for example a flat list where a list of lists is required.
type SchemaMismatch struct {
	Type   Type
	Actual string
	// Path locates the offending element inside nested lists, e.g. "[2][0]".
	Path string
}

func (e *SchemaMismatch) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("schema mismatch at %s: expected %s, got %s", e.Path, e.Type, e.Actual)
	}

	return fmt.Sprintf("schema mismatch: expected %s, got %s", e.Type, e.Actual)
}

// CoercionError reports that a wire value could not be read as a candidate
// type. It is the per-candidate failure recorded by the fallback engine.
type CoercionError struct {
	Type   Type
	Actual string
	Path   string
}

func (e *CoercionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cannot read %s as %s at %s", e.Actual, e.Type, e.Path)
	}

	return fmt.Sprintf("cannot read %s as %s", e.Actual, e.Type)
}

// CandidateFailure is the reason one candidate type was rejected.
type CandidateFailure struct {
	Type Type
	Err  error
}

// ParseExhausted is returned by Deserialize when no candidate type of a field
// accepted the wire value. It carries every individual failure in candidate
// order.
type ParseExhausted struct {
	Field    string
	Failures []CandidateFailure
}

func (e *ParseExhausted) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("%s: %v", f.Type, f.Err)
	}

	return fmt.Sprintf("field %q: no candidate type matched (%s)", e.Field, strings.Join(parts, "; "))
}

// Unwrap returns the per-candidate errors.
func (e *ParseExhausted) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}

	return errs
}

// ResultParseFailure wraps a ParseExhausted raised while reading the return
// value of a callable.
type ResultParseFailure struct {
	Method string
	Cause  *ParseExhausted
}

func (e *ResultParseFailure) Error() string {
	return fmt.Sprintf("%s: parsing result: %v", e.Method, e.Cause)
}

func (e *ResultParseFailure) Unwrap() error {
	return e.Cause
}

// atIndex prefixes the element path of a nested mismatch with index i.
func atIndex(err error, i int) error {
	idx := fmt.Sprintf("[%d]", i)

	switch e := err.(type) {
	case *SchemaMismatch:
		e.Path = idx + e.Path
		return e
	case *CoercionError:
		e.Path = idx + e.Path
		return e
	default:
		return fmt.Errorf("%s: %w", idx, err)
	}
}
