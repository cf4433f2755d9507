package schema

// Value is a tagged JSON-shaped value: nil, bool, int64, float64, string,
// []Value, or map[string]Value. It is used both as resolver input
// (coerced arguments, variables) and as resolver output.
type Value = any
