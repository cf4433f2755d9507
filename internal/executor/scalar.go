package executor

import (
	"strconv"

	schema "github.com/oakwire/gqlexec/internal/schema"
)

// decodeScalar converts a JSON-shaped Value into the Go representation of
// the given ScalarKind, per the terminal-None conversion table in §4.2:
// int, float, string, bool, an opaque ID decoded as a byte sequence, and
// a pass-through raw JSON Scalar wildcard.
func decodeScalar(name string, kind schema.ScalarKind, v schema.Value) (schema.Value, error) {
	switch kind {
	case schema.ScalarInt:
		switch n := v.(type) {
		case int64:
			return n, nil
		case int:
			return int64(n), nil
		case float64:
			return int64(n), nil
		case string:
			i, err := strconv.ParseInt(n, 10, 64)
			if err != nil {
				return nil, NewSchemaError("Invalid argument: %s message: not an integer", name)
			}
			return i, nil
		default:
			return nil, NewSchemaError("Invalid argument: %s message: not an integer", name)
		}
	case schema.ScalarFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return nil, NewSchemaError("Invalid argument: %s message: not a float", name)
			}
			return f, nil
		default:
			return nil, NewSchemaError("Invalid argument: %s message: not a float", name)
		}
	case schema.ScalarBoolean:
		b, ok := v.(bool)
		if !ok {
			return nil, NewSchemaError("Invalid argument: %s message: not a boolean", name)
		}
		return b, nil
	case schema.ScalarString:
		s, ok := v.(string)
		if !ok {
			return nil, NewSchemaError("Invalid argument: %s message: not a string", name)
		}
		return s, nil
	case schema.ScalarID:
		s, ok := v.(string)
		if !ok {
			return nil, NewSchemaError("Invalid argument: %s message: not an id", name)
		}
		return []byte(s), nil
	case schema.ScalarRaw:
		return v, nil
	default:
		return nil, NewSchemaError("Invalid argument: %s message: unknown scalar kind", name)
	}
}

// encodeScalar is decodeScalar's inverse, used by ResultShaper to turn a
// resolver's native scalar output back into a JSON-shaped Value.
func encodeScalar(kind schema.ScalarKind, v schema.Value) schema.Value {
	if kind == schema.ScalarID {
		if b, ok := v.([]byte); ok {
			return string(b)
		}
	}
	return v
}
