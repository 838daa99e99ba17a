package wire

import (
	"encoding/json"
	"fmt"
)

// Candidate is one member of a field's type union, coupled with the codec
// that moves values of that type between native and wire form.
type Candidate interface {
	// Type returns the candidate's type.
	Type() Type
	// Accepts reports whether the native value v is a member of the type.
	Accepts(v any) bool
	// EncodeAny converts a native value to its wire form.
	EncodeAny(v any) (any, error)
	// DecodeAny reads a wire value as the candidate type.
	DecodeAny(raw any, sink Sink) (any, error)
}

// Codec converts values of one candidate type between the native Go type T
// and the wire representation.
type Codec[T any] struct {
	typ Type
	enc func(v T) (any, error)
	dec func(raw any, sink Sink) (T, error)
	// loose encodes a native value that is not a T but has the right shape,
	// for example an int for an int64 codec or a []any for a list codec.
	loose func(v any) (any, error)
}

// Type returns the codec's candidate type.
func (c Codec[T]) Type() Type {
	return c.typ
}

// Encode converts v to its wire form.
func (c Codec[T]) Encode(v T) (any, error) {
	return c.enc(v)
}

// Decode reads raw as T.
func (c Codec[T]) Decode(raw any, sink Sink) (T, error) {
	if sink == nil {
		sink = Discard
	}

	return c.dec(raw, sink)
}

func (c Codec[T]) EncodeAny(v any) (any, error) {
	if t, ok := v.(T); ok {
		return c.enc(t)
	}

	if c.loose != nil {
		return c.loose(v)
	}

	return nil, &SchemaMismatch{Type: c.typ, Actual: Shape(v)}
}

func (c Codec[T]) DecodeAny(raw any, sink Sink) (any, error) {
	v, err := c.Decode(raw, sink)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (c Codec[T]) Accepts(v any) bool {
	_, err := c.EncodeAny(v)
	return err == nil
}

// Builtin scalar codecs.
var (
	String = Codec[string]{
		typ: Builtin(NameString),
		enc: func(v string) (any, error) { return v, nil },
		dec: func(raw any, _ Sink) (string, error) {
			s, ok := raw.(string)
			if !ok {
				return "", &CoercionError{Type: Builtin(NameString), Actual: Shape(raw)}
			}

			return s, nil
		},
	}

	Integer = Codec[int64]{
		typ: Builtin(NameInteger),
		enc: func(v int64) (any, error) { return v, nil },
		dec: func(raw any, _ Sink) (int64, error) {
			n, ok := toInt64(raw)
			if !ok {
				return 0, &CoercionError{Type: Builtin(NameInteger), Actual: Shape(raw)}
			}

			return n, nil
		},
		loose: func(v any) (any, error) {
			if !isGoInteger(v) {
				return nil, &SchemaMismatch{Type: Builtin(NameInteger), Actual: Shape(v)}
			}

			n, ok := toInt64(v)
			if !ok {
				return nil, &SchemaMismatch{Type: Builtin(NameInteger), Actual: fmt.Sprintf("out of range %T", v)}
			}

			return n, nil
		},
	}

	Float = Codec[float64]{
		typ: Builtin(NameFloat),
		enc: func(v float64) (any, error) { return v, nil },
		dec: func(raw any, _ Sink) (float64, error) {
			f, ok := toFloat64(raw)
			if !ok {
				return 0, &CoercionError{Type: Builtin(NameFloat), Actual: Shape(raw)}
			}

			return f, nil
		},
		loose: func(v any) (any, error) {
			if _, isNumber := v.(json.Number); isNumber {
				return nil, &SchemaMismatch{Type: Builtin(NameFloat), Actual: Shape(v)}
			}

			f, ok := toFloat64(v)
			if !ok {
				return nil, &SchemaMismatch{Type: Builtin(NameFloat), Actual: Shape(v)}
			}

			return f, nil
		},
	}

	Boolean = Codec[bool]{
		typ: Builtin(NameBoolean),
		enc: func(v bool) (any, error) { return v, nil },
		dec: func(raw any, _ Sink) (bool, error) {
			b, ok := raw.(bool)
			if !ok {
				return false, &CoercionError{Type: Builtin(NameBoolean), Actual: Shape(raw)}
			}

			return b, nil
		},
	}
)

// List wraps elem in one level of ordered sequence.
func List[T any](elem Codec[T]) Codec[[]T] {
	typ := elem.typ.ListOf()

	return Codec[[]T]{
		typ: typ,
		enc: func(v []T) (any, error) {
			out := make([]any, len(v))
			for i, item := range v {
				w, err := elem.Encode(item)
				if err != nil {
					return nil, atIndex(err, i)
				}

				out[i] = w
			}

			return out, nil
		},
		dec: func(raw any, sink Sink) ([]T, error) {
			items, ok := asSlice(raw)
			if !ok {
				return nil, &CoercionError{Type: typ, Actual: Shape(raw)}
			}

			out := make([]T, len(items))
			for i, item := range items {
				v, err := elem.dec(item, sink)
				if err != nil {
					return nil, atIndex(err, i)
				}

				out[i] = v
			}

			return out, nil
		},
		loose: func(v any) (any, error) {
			items, ok := asSlice(v)
			if !ok {
				return nil, &SchemaMismatch{Type: typ, Actual: Shape(v)}
			}

			out := make([]any, len(items))
			for i, item := range items {
				w, err := elem.EncodeAny(item)
				if err != nil {
					return nil, atIndex(err, i)
				}

				out[i] = w
			}

			return out, nil
		},
	}
}

// Wirer is implemented by every generated value object.
type Wirer interface {
	ToWire() (map[string]any, error)
}

// Object returns the codec of a generated value object. fromWire is the
// object's FromWire function.
func Object[T Wirer](name string, fromWire func(raw any, sink Sink) (T, error)) Codec[T] {
	typ := Type{Name: name}

	return Codec[T]{
		typ: typ,
		enc: func(v T) (any, error) {
			if isAbsent(v) {
				return nil, &SchemaMismatch{Type: typ, Actual: "nil"}
			}

			m, err := v.ToWire()
			if err != nil {
				return nil, err
			}

			return m, nil
		},
		dec: func(raw any, sink Sink) (T, error) {
			var zero T
			if raw != nil {
				if _, ok := raw.(map[string]any); !ok {
					return zero, &CoercionError{Type: typ, Actual: Shape(raw)}
				}
			}

			return fromWire(raw, sink)
		},
	}
}

func isGoInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
