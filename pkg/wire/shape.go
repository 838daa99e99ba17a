package wire

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Shape describes the runtime shape of v for error messages: "nil",
// "integer", "list of string", "map", or the Go type for anything else.
func Shape(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return NameString
	case bool:
		return NameBoolean
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return NameInteger
		}

		return NameFloat
	case float32, float64:
		return NameFloat
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return NameInteger
	case map[string]any:
		return "map"
	}

	if items, ok := asSlice(v); ok {
		if len(items) == 0 {
			return "empty list"
		}

		return "list of " + Shape(items[0])
	}

	if isAbsent(v) {
		return fmt.Sprintf("nil %T", v)
	}

	return fmt.Sprintf("%T", v)
}

// isAbsent reports whether v holds no value: a nil interface or a nil
// pointer, slice, map or interface.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// asSlice returns the elements of any slice or array value.
func asSlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	// []byte is a scalar on the wire, never a sequence of integers.
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

// toInt64 reads any Go integer, an integral float or a json.Number as int64.
func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case uint:
		return int64(x), x <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	case float64:
		return floatToInt64(x)
	case float32:
		return floatToInt64(float64(x))
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, true
		}

		f, err := x.Float64()
		if err != nil {
			return 0, false
		}

		return floatToInt64(f)
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

// toFloat64 reads any Go number or a json.Number as float64.
func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}

	if n, ok := toInt64(v); ok {
		return float64(n), true
	}

	return 0, false
}

// normalize maps numeric values onto int64 or float64 so that constants
// authored as int compare equal to native int64 values.
func normalize(v any) any {
	switch v.(type) {
	case float32, float64:
		f, _ := toFloat64(v)
		if n, ok := floatToInt64(f); ok {
			return n
		}

		return f
	case json.Number:
		if n, ok := toInt64(v); ok {
			return n
		}

		f, _ := toFloat64(v)

		return f
	}

	if n, ok := toInt64(v); ok {
		return n
	}

	return v
}

// Equal reports whether two scalar values are equal after numeric
// normalization.
func Equal(a, b any) bool {
	return reflect.DeepEqual(normalize(a), normalize(b))
}
