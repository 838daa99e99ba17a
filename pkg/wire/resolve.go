package wire

// Resolved is the outcome of Deserialize: the index and type of the winning
// candidate and the decoded value. Index is -1 when an optional field holds
// no value.
type Resolved struct {
	Index int
	Type  Type
	Value any
}

// None is the "no value" result of an absent optional field.
var None = Resolved{Index: -1}

// Present reports whether a candidate produced a value.
func (r Resolved) Present() bool {
	return r.Index >= 0
}

// Serialize converts a native value to its wire form as candidate c. A value
// whose shape does not fit c, such as a flat list for a list of lists, fails
// with *SchemaMismatch.
func Serialize(v any, c Candidate) (any, error) {
	return c.EncodeAny(v)
}

// Deserialize reads raw through the field's candidates in declared order and
// returns the first success. Rejected candidates are reported to sink. An
// absent value for an optional field returns None without trying any
// candidate. When every candidate fails the error is *ParseExhausted.
//
// A candidate that decodes raw to no value, such as an object read from nil
// or an empty map, only satisfies an optional field, which then resolves to
// None. For a required field it counts as a failed candidate.
func Deserialize(raw any, f *Field, sink Sink) (Resolved, error) {
	if sink == nil {
		sink = Discard
	}

	if raw == nil && f.Optional {
		return None, nil
	}

	failures := make([]CandidateFailure, 0, len(f.Candidates))

	for i, c := range f.Candidates {
		v, err := c.DecodeAny(raw, sink)
		if err == nil && isAbsent(v) {
			if f.Optional {
				return None, nil
			}

			err = &CoercionError{Type: c.Type(), Actual: emptyShape(raw)}
		}

		if err == nil {
			return Resolved{Index: i, Type: c.Type(), Value: v}, nil
		}

		failures = append(failures, CandidateFailure{Type: c.Type(), Err: err})
		sink.Reject(Rejection{Field: f.Name, Candidate: c.Type(), Raw: raw, Err: err})
	}

	return None, &ParseExhausted{Field: f.Name, Failures: failures}
}

// emptyShape describes a wire value that decoded to nothing.
func emptyShape(raw any) string {
	if m, ok := raw.(map[string]any); ok && len(m) == 0 {
		return "empty map"
	}

	return Shape(raw)
}
